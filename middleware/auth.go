package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/auth"
)

// localsKey is a dedicated type so the guard's locals entry cannot collide
// with plain string keys.
type localsKey string

// userIDKey is where RequireAuth stores the resolved identity in the
// request's locals.
const userIDKey localsKey = "user_id"

// RequireAuth verifies the request's bearer token and stores the resolved
// user id for downstream handlers. Missing, malformed, expired, and forged
// tokens all short-circuit with 401 before any protected handler runs.
func RequireAuth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return unauthenticated(c)
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identity stored by RequireAuth, or "" outside a
// guarded route.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
}
