package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Zibuza/Reschool-HW-B/dto"
	"github.com/Zibuza/Reschool-HW-B/internal/authctx"
	"github.com/Zibuza/Reschool-HW-B/internal/token"
)

// RequireAuth gates protected routes. It extracts the bearer token,
// verifies it and binds the subject id and role into Locals for the
// handlers. It never fetches the user record; handlers that need the
// full profile load it themselves.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "authorization token is required"})
		}

		claims, err := tokens.Verify(strings.TrimSpace(auth[len("bearer "):]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "invalid or expired token"})
		}

		c.Locals(authctx.UserIDKey, claims.UserID)
		c.Locals(authctx.RoleKey, claims.Role)
		return c.Next()
	}
}
