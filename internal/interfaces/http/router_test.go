package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/internal/testutil"
)

// newTestApp levanta la API completa sobre el store en memoria.
func newTestApp() *fiber.App {
	store := testutil.NewMemStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:      usecase.NewUserUseCase(store),
		WarehouseUC: usecase.NewWarehouseUseCase(store, store.WarehouseRepo()),
		ProductUC:   usecase.NewProductUseCase(store, store.ProductRepo()),
		AuthUC: auth.NewAuthUseCase(store.UserRepo(), auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeID extrae el campo id de una respuesta 200.
func decodeID(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

// registerAndLogin registra un usuario vía API y devuelve (userID, token).
func registerAndLogin(t *testing.T, app *fiber.App, userName, email string) (string, string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/users/create", "", fiber.Map{
		"userName": userName,
		"email":    email,
		"password": "Secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	userID := decodeID(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "Secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)
	return userID, login.Token
}

func TestRouter_RegistroYLogin(t *testing.T) {
	app := newTestApp()

	registerAndLogin(t, app, "maria01", "maria@example.com")

	// Email repetido → 409.
	resp := doJSON(t, app, http.MethodPost, "/api/users/create", "", fiber.Map{
		"userName": "otra",
		"email":    "maria@example.com",
		"password": "Secreto123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Entrada con forma inválida → 400, sin tocar el dominio.
	resp = doJSON(t, app, http.MethodPost, "/api/users/create", "", fiber.Map{
		"userName": "ab",
		"email":    "no-es-email",
		"password": "corta",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Password incorrecto → 401.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "maria@example.com",
		"password": "Incorrecto1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_RutasProtegidasSinToken(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/warehouse/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/products/create", "", fiber.Map{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// Flujo completo: bodega y producto con su stock, reglas de borrado y el
// contrato 200/204 de los listados.
func TestRouter_FlujoBodegasYProductos(t *testing.T) {
	app := newTestApp()
	userID, token := registerAndLogin(t, app, "maria01", "maria@example.com")

	// Sin bodegas todavía → 204.
	resp := doJSON(t, app, http.MethodGet, "/api/warehouse/", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Crear bodega.
	resp = doJSON(t, app, http.MethodPost, "/api/warehouse/create", token, fiber.Map{
		"name":     "Central",
		"location": "Bogotá",
		"userId":   userID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	warehouseID := decodeID(t, resp)

	// Nombre repetido → 409.
	resp = doJSON(t, app, http.MethodPost, "/api/warehouse/create", token, fiber.Map{
		"name":     "Central",
		"location": "Cali",
		"userId":   userID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Creador inexistente → 404.
	resp = doJSON(t, app, http.MethodPost, "/api/warehouse/create", token, fiber.Map{
		"name":     "Norte",
		"location": "Cali",
		"userId":   uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Con una bodega → 200.
	resp = doJSON(t, app, http.MethodGet, "/api/warehouse/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Producto con bodega inexistente → 404 y nada persiste.
	resp = doJSON(t, app, http.MethodPost, "/api/products/create", token, fiber.Map{
		"name":        "Tornillos",
		"description": "Caja x100",
		"price":       "12.50",
		"stock":       30,
		"warehouseId": uuid.New().String(),
		"userId":      userID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/products/", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Producto con su stock inicial.
	resp = doJSON(t, app, http.MethodPost, "/api/products/create", token, fiber.Map{
		"name":        "Tornillos",
		"description": "Caja x100",
		"price":       "12.50",
		"stock":       30,
		"warehouseId": warehouseID,
		"userId":      userID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	productID := decodeID(t, resp)

	// El producto aparece en el listado de la bodega.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/warehouse/%s/products", warehouseID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Con stock > 0 el producto no se puede borrar.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/delete/"+productID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Stock negativo → 400.
	stockPath := fmt.Sprintf("/api/products/update/%s/warehouse/%s/stock", productID, warehouseID)
	resp = doJSON(t, app, http.MethodPut, stockPath, token, fiber.Map{"stock": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Sobrescribir el stock a cero sí es válido.
	resp = doJSON(t, app, http.MethodPut, stockPath, token, fiber.Map{"stock": 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// La bodega aún tiene la asociación: su borrado sigue bloqueado.
	resp = doJSON(t, app, http.MethodDelete, "/api/warehouse/delete/"+warehouseID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Con el stock en cero el producto sí se puede borrar.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/delete/"+productID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Y sin asociaciones la bodega también.
	resp = doJSON(t, app, http.MethodDelete, "/api/warehouse/delete/"+warehouseID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/warehouse/", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_ActualizarInexistentes(t *testing.T) {
	app := newTestApp()
	_, token := registerAndLogin(t, app, "maria01", "maria@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/warehouse/update/"+uuid.New().String(), token, fiber.Map{
		"name":     "Norte",
		"location": "Cali",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/products/update/"+uuid.New().String(), token, fiber.Map{
		"name":        "Tornillos",
		"description": "Caja x100",
		"price":       "12.50",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
