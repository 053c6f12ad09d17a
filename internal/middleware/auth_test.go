package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(ResolveIdentity(testSecret))
	app.Delete("/companies/:id", RequireRole(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    c.Locals("user_id"),
			"role":       c.Locals("role"),
			"company_id": c.Locals("company_id"),
		})
	})
	return app
}

func TestResolveIdentityFromJWT(t *testing.T) {
	app := newTestApp("superadmin")
	token := signToken(t, jwt.MapClaims{
		"sub":  "64a000000000000000000001",
		"role": "superadmin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("DELETE", "/companies/64a000000000000000000009", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestResolveIdentityRejectsBadToken(t *testing.T) {
	app := newTestApp("superadmin")
	req := httptest.NewRequest("DELETE", "/companies/64a000000000000000000009", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestResolveIdentityHeaderFallback(t *testing.T) {
	app := newTestApp("superadmin")
	req := httptest.NewRequest("DELETE", "/companies/64a000000000000000000009", nil)
	req.Header.Set("x-user-id", "64a000000000000000000001")
	req.Header.Set("x-user-role", "superadmin")
	req.Header.Set("x-company-id", "64a000000000000000000002")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleAnonymous(t *testing.T) {
	app := newTestApp("superadmin")
	resp, err := app.Test(httptest.NewRequest("DELETE", "/companies/64a000000000000000000009", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Deleting a company is superadmin-only; an admin gets 403, not 404.
func TestRequireRoleForbidden(t *testing.T) {
	app := newTestApp("superadmin")
	token := signToken(t, jwt.MapClaims{
		"sub":        "64a000000000000000000001",
		"role":       "admin",
		"company_id": "64a000000000000000000002",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("DELETE", "/companies/64a000000000000000000009", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAuthOnly(t *testing.T) {
	app := fiber.New()
	app.Use(ResolveIdentity(testSecret))
	app.Get("/me", RequireRole(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("x-user-id", "64a000000000000000000001")
	req.Header.Set("x-user-role", "user")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
