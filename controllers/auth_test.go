package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginProvider(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/providers/login", fiber.Map{
		"email":    email,
		"password": "pw123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decodeMap(t, resp)["token"].(string)
}

func TestProviderMe(t *testing.T) {
	app, _ := newTestApp(t)
	registerProvider(t, app, "Joe's Garage", "joe@x.com", "Mechanic")
	token := loginProvider(t, app, "joe@x.com")

	t.Run("with token", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/api/providers/me", nil,
			"Authorization", "Bearer "+token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, "joe@x.com", body["email"])
		_, hasPassword := body["password"]
		assert.False(t, hasPassword, "response must not contain the password field")
	})

	t.Run("without token", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodGet, "/api/providers/me", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Alice", "alice@x.com")

	resp := doRequest(t, app, fiber.MethodPost, "/api/users/login", fiber.Map{
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := decodeMap(t, resp)["token"].(string)

	t.Run("requires a token", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodPost, "/api/users/logout", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logs out", func(t *testing.T) {
		resp := doRequest(t, app, fiber.MethodPost, "/api/users/logout", nil,
			"Authorization", "Bearer "+token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, "Successfully logged out", body["message"])
	})

	t.Run("without redis the token simply ages out", func(t *testing.T) {
		// No revocation list is configured in tests, so the JWT remains
		// valid until its expiry.
		resp := doRequest(t, app, fiber.MethodGet, "/api/users/me", nil,
			"Authorization", "Bearer "+token)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
