package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/InventoryPro-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/InventoryPro-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventorypro-test"
	testExpMin    = 60
)

// buildAuthTestApp construye una aplicación Fiber mínima con el AuthMiddleware
// y un handler que expone los locals cargados.
func buildAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user":      apphttp.GetUser(c),
				"warehouse": apphttp.GetWarehouse(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el usuario y la bodega indicados.
func tokenFor(t *testing.T, user, warehouse string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, user, warehouse, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doProtected lanza una petición GET /protected y devuelve la respuesta.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → 200 y los locals exponen usuario y bodega.
func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildAuthTestApp()
	resp := doProtected(t, app, tokenFor(t, "sofia", "Central"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "sofia", body["user"], "el local user debe venir del claim")
	assert.Equal(t, "Central", body["warehouse"], "el local warehouse debe venir del claim")
}

// Caso 2: sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildAuthTestApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

// Caso 3: header sin el prefijo Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildAuthTestApp()
	resp := doProtected(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

// Caso 4: token firmado con otro secreto → 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildAuthTestApp()
	tok, err := pkgjwt.Generate("otro-secreto", "sofia", "Central", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildAuthTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, "sofia", "Central", testIssuer, -5)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
