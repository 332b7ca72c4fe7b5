package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnayani33/SRMS/app/models"
)

func newPolicyTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/admin-only", AuthMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/api/me", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": CurrentUser(c).ID})
	})
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := GenerateJWT(&models.User{
		ID:        "3f5a0b1c-9a1e-4c70-8f52-1c2d3e4f5a6b",
		Email:     "user@example.com",
		Username:  "user1",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddleware_Cookie(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: tokenFor(t, models.RoleStudent)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminOnly_StudentForbidden(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminOnly_Unauthenticated(t *testing.T) {
	app := newPolicyTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("student123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("student123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
