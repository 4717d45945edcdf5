package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campaign-backend/internal/models"
	"campaign-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func roleApp(role string) *fiber.App {
	app := fiber.New()
	app.Get("/editor-only",
		func(c *fiber.Ctx) error {
			c.Locals(ClaimsKey, &services.Claims{UserID: 1, Role: role})
			return c.Next()
		},
		RequireRoles(models.RoleEditor),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	app := roleApp(models.RoleEditor)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/editor-only", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRoles_AdminPassesAnyGate(t *testing.T) {
	app := roleApp(models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/editor-only", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	app := roleApp("VIEWER")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/editor-only", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequireRoles_MissingClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/gated", RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
