package middleware_test

import (
	"net/http/httptest"
	"testing"

	"asset-ledger/core/middleware/auth"
	"asset-ledger/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})
	return app
}

func TestAuth(t *testing.T) {
	app := newApp("secret")

	req := httptest.NewRequest("GET", "/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_Disabled(t *testing.T) {
	resp, err := newApp("").Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRayID(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(rayid.Header), 36)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(rayid.Header, "given-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given-id", resp.Header.Get(rayid.Header))
}
