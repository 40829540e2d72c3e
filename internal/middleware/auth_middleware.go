package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/pkg/jwt"
)

// RequireAuth validates the identity provider's bearer token and sets the
// tenant identity in the request context. Every downstream query is scoped
// by that identity.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing authorization token")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return unauthorized(c, "invalid authorization format, use: Bearer <token>")
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)

		return c.Next()
	}
}

// RequireCronKey guards the externally triggered scan endpoints with a
// shared secret in X-Cron-Key.
func RequireCronKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return unauthorized(c, "cron trigger disabled")
		}
		key := c.Get("X-Cron-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			return unauthorized(c, "invalid cron key")
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
