package authAdmin

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

type headerChecker struct{}

func (headerChecker) IsAdmin(c *fiber.Ctx) bool { return c.Get("X-Test-Admin") == "yes" }

func newApp(gate AdminChecker) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	api := app.Group("/api", AdminContext(gate))
	api.Get("/open", func(c *fiber.Ctx) error {
		if helperAuth.IsAdmin(c) {
			return c.SendString("admin")
		}
		return c.SendString("guest")
	})
	api.Get("/closed", RequireAdmin(), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func get(t *testing.T, app *fiber.App, path string, admin bool) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if admin {
		req.Header.Set("X-Test-Admin", "yes")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAdminContext(t *testing.T) {
	app := newApp(headerChecker{})

	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/open", false))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/api/closed", false))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/closed", true))
}

func TestAdminContext_NilGateIsGuest(t *testing.T) {
	app := newApp(nil)
	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/open", true))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/api/closed", true))
}
