package middleware

import (
	"strings"

	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware.
const (
	AdminIDKey    = "adminID"
	AdminEmailKey = "adminEmail"
)

func extractToken(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a valid admin token.
func RequireAuth(auth services.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c, cookieName)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(AdminIDKey, claims.AdminID)
		c.Locals(AdminEmailKey, claims.Email)
		return c.Next()
	}
}

// OptionalAuth annotates the request with admin identity when a valid token is
// present but lets anonymous requests through. Handlers that serve both public
// and admin shapes (allLangs listings) check IsAdmin themselves.
func OptionalAuth(auth services.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := extractToken(c, cookieName); token != "" {
			if claims, err := auth.VerifyToken(token); err == nil {
				c.Locals(AdminIDKey, claims.AdminID)
				c.Locals(AdminEmailKey, claims.Email)
			}
		}
		return c.Next()
	}
}

// IsAdmin reports whether the auth middleware identified an admin.
func IsAdmin(c *fiber.Ctx) bool {
	_, ok := c.Locals(AdminIDKey).(uint)
	return ok
}
