package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Zibuza/Reschool-HW-B/internal/authctx"
)

// fakeAuth stands in for the JWT guard: it binds a fixed user id into
// Locals the way middleware.RequireAuth would.
func fakeAuth(uid bson.ObjectID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(authctx.UserIDKey, uid.Hex())
		return c.Next()
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(r io.Reader, out any) error {
	return json.NewDecoder(r).Decode(out)
}
