package middleware

import (
	"strings"

	"campaign-backend/internal/models"
	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the locals key the verified token claims are stored under.
const ClaimsKey = "claims"

// Protected rejects requests without a valid bearer token and stashes the
// claims for downstream handlers.
func Protected(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing or invalid authorization header")
		}

		claims, err := authService.ParseToken(strings.TrimSpace(auth[len("Bearer "):]))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Admins pass every
// gate.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowed[claims.Role]; !ok && claims.Role != models.RoleAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}

// GetClaims returns the verified claims for the current request, or nil when
// the route is not behind Protected.
func GetClaims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(ClaimsKey).(*services.Claims)
	return claims
}
