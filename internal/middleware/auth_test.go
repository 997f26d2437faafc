package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsa-mn/website-backend/internal/config"
	"github.com/amsa-mn/website-backend/internal/token"
)

func newGatedApp(t *testing.T) (*fiber.App, *token.Issuer) {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	app := fiber.New()
	app.Get("/protected", RequireAuth(cfg), func(c *fiber.Ctx) error {
		userID, role, err := CurrentUser(c)
		require.NoError(t, err)
		return c.JSON(fiber.Map{"id": userID.String(), "role": role})
	})
	app.Get("/admin-only", RequireAuth(cfg), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, issuer
}

func TestRequireAuthMissingToken(t *testing.T) {
	app, _ := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthBadToken(t *testing.T) {
	app, _ := newGatedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	app, issuer := newGatedApp(t)

	tok, err := issuer.Issue(uuid.New(), "member")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleExactMatch(t *testing.T) {
	app, issuer := newGatedApp(t)

	tests := []struct {
		role string
		want int
	}{
		{"admin", fiber.StatusOK},
		{"member", fiber.StatusForbidden},
		// Literal comparison: not a role hierarchy.
		{"super-admin", fiber.StatusForbidden},
		{"Admin", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			tok, err := issuer.Issue(uuid.New(), tt.role)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
