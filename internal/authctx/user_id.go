// Package authctx reads the authenticated identity the middleware left
// in the request Locals.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// UserIDFrom resolves the Locals value back to an ObjectID. The second
// return is false on anonymous requests or a garbled id.
func UserIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	if v := c.Locals(UserIDKey); v != nil {
		if s, ok := v.(string); ok {
			if oid, err := bson.ObjectIDFromHex(s); err == nil {
				return oid, true
			}
		}
	}
	return bson.NilObjectID, false
}

// RoleFrom returns the role claim, empty when absent.
func RoleFrom(c *fiber.Ctx) string {
	if v := c.Locals(RoleKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
