package transport

import (
	"encoding/json"
	"net/http"
	"testing"

	"tienda-api/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/productos", map[string]any{
		"nombre":      "Camiseta Básica",
		"descripcion": "Camiseta de algodón",
		"precio":      15.99,
		"categoria":   "Ropa",
		"stock":       100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Product)
	assert.Equal(t, 1, envelope.Product.ID)
	assert.Equal(t, "Camiseta Básica", envelope.Product.Name)
	assert.True(t, envelope.Product.Price.Equal(decimal.RequireFromString("15.99")))
	assert.Equal(t, "default.jpg", envelope.Product.Image)
}

func TestCreateProductEndpointMissingFields(t *testing.T) {
	router := newTestRouter(t, nil)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/productos", map[string]any{
		"nombre": "Camiseta Básica",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
}

func TestCreateProductEndpointNegativeStock(t *testing.T) {
	router := newTestRouter(t, nil)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/productos", map[string]any{
		"nombre":    "Camiseta Básica",
		"precio":    15.99,
		"categoria": "Ropa",
		"stock":     -1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
}

func TestListProductsEndpointFilters(t *testing.T) {
	router := newTestRouter(t, []domain.Product{
		{ID: 1, Name: "Laptop Gamer", Price: decimal.RequireFromString("1200.00"), Category: "Tecnología", Stock: 15},
		{ID: 2, Name: "Auriculares Bluetooth", Price: decimal.RequireFromString("89.99"), Category: "Audio", Stock: 50},
		{ID: 3, Name: "Camiseta Básica", Price: decimal.RequireFromString("15.99"), Category: "Ropa", Stock: 100},
	})

	t.Run("no filter", func(t *testing.T) {
		w, envelope := doJSON(t, router, http.MethodGet, "/api/productos", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, envelope.Count)
	})

	t.Run("category", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/productos?categoria=ropa", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count     int              `json:"count"`
			Productos []domain.Product `json:"productos"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, 1, body.Count)
		assert.Equal(t, "Camiseta Básica", body.Productos[0].Name)
	})

	t.Run("price range", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/productos?min_precio=50&max_precio=100", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count     int              `json:"count"`
			Productos []domain.Product `json:"productos"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, 1, body.Count)
		assert.Equal(t, "Auriculares Bluetooth", body.Productos[0].Name)
	})

	t.Run("malformed price", func(t *testing.T) {
		w, envelope := doJSON(t, router, http.MethodGet, "/api/productos?min_precio=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, envelope.Success)
	})
}

func TestGetProductEndpoint(t *testing.T) {
	router := newTestRouter(t, defaultCatalog())

	w, envelope := doJSON(t, router, http.MethodGet, "/api/productos/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, envelope.Product)
	assert.Equal(t, "Laptop Gamer", envelope.Product.Name)

	w, envelope = doJSON(t, router, http.MethodGet, "/api/productos/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, envelope.Error, "999")

	w, _ = doJSON(t, router, http.MethodGet, "/api/productos/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductEndpoint(t *testing.T) {
	router := newTestRouter(t, defaultCatalog())

	w, envelope := doJSON(t, router, http.MethodPut, "/api/productos/1", map[string]any{
		"stock": 3,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, envelope.Product)
	assert.Equal(t, 3, envelope.Product.Stock)
	// Untouched fields keep their values
	assert.Equal(t, "Laptop Gamer", envelope.Product.Name)
	assert.True(t, envelope.Product.Price.Equal(decimal.RequireFromString("1200.00")))

	w, _ = doJSON(t, router, http.MethodPut, "/api/productos/999", map[string]any{"stock": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductEndpoint(t *testing.T) {
	router := newTestRouter(t, defaultCatalog())

	w, envelope := doJSON(t, router, http.MethodDelete, "/api/productos/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)

	w, _ = doJSON(t, router, http.MethodGet, "/api/productos/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/productos/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
