package middleware

import (
	"github.com/gofiber/fiber/v2"

	"spotshare/auth"
)

const userIDKey = "userID"

// AuthMiddleware attaches the authenticated user's id to the request context
// when a valid session token is present, and leaves it absent otherwise.
// It never rejects on its own; every handler performs its own auth check so
// that per-route ordering (e.g. validation before auth) is preserved.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var tokenStr string

		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		} else {
			tokenStr = c.Cookies("JWT")
		}

		if tokenStr == "" {
			return c.Next()
		}

		userID, err := auth.ParseToken(tokenStr)
		if err != nil {
			// invalid or expired token, treat as unauthenticated
			return c.Next()
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user's id, if any.
func CurrentUser(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(userIDKey).(uint)
	return userID, ok
}
