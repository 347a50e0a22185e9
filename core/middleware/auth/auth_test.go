package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing key is rejected", func(t *testing.T) {
		app := newApp("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong key is rejected", func(t *testing.T) {
		app := newApp("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(HeaderName, "nope")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Correct key passes", func(t *testing.T) {
		app := newApp("secret")

		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(HeaderName, "secret")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Empty configured key disables the check", func(t *testing.T) {
		app := newApp("")

		req := httptest.NewRequest("GET", "/ping", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
