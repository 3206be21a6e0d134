package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartFlow(t *testing.T) {
	r, _ := setupRouter(t, demoGateway())

	// Deux ajouts du même produit fusionnent en un seul item
	doJSON(t, r, http.MethodPost, "/api/cart/add", `{"product_id":1}`)
	doJSON(t, r, http.MethodPost, "/api/cart/add", `{"product_id":1}`)
	w, payload := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"product_id":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	items := payload["items"].([]any)
	require.Len(t, items, 2)
	assert.EqualValues(t, 110, payload["total_price"]) // 2×30 + 50
	assert.EqualValues(t, 3, payload["total_count"])

	// Quantité fixée telle quelle
	w, payload = doJSON(t, r, http.MethodPut, "/api/cart/1", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 200, payload["total_price"]) // 5×30 + 50

	// Retrait
	w, payload = doJSON(t, r, http.MethodDelete, "/api/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 50, payload["total_price"])

	// Vidage complet
	w, _ = doJSON(t, r, http.MethodDelete, "/api/cart/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, payload = doJSON(t, r, http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 0, payload["total_count"])
}

func TestAddUnknownProductToCart(t *testing.T) {
	r, _ := setupRouter(t, demoGateway())

	w, _ := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"product_id":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
