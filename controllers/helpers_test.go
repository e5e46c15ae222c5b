package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autocarehub/backend/db"
	"github.com/autocarehub/backend/routes"
)

// newTestApp builds a fiber app wired to its own in-memory store, so each
// test case runs against isolated state.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	app := fiber.New()
	routes.SetupUserRoutes(app, conn)
	routes.SetupProviderRoutes(app, conn)
	routes.SetupBookingRoutes(app, conn)
	return app, conn
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func registerProvider(t *testing.T, app *fiber.App, name, email, serviceType string) uint {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/providers/register", fiber.Map{
		"name":        name,
		"email":       email,
		"phone":       "555-0100",
		"serviceType": serviceType,
		"location":    "Springfield",
		"password":    "pw123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	return uint(body["id"].(float64))
}

func registerUser(t *testing.T, app *fiber.App, name, email string) uint {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/users/register", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "pw123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	return uint(body["id"].(float64))
}
