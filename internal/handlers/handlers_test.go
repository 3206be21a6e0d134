package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"boutique_back_end/internal/middleware"
	"boutique_back_end/internal/models"
	"boutique_back_end/internal/store"
)

// fakeGateway implémente store.ProductGateway sans réseau
type fakeGateway struct {
	products   []models.Product
	categories []string
	created    models.Product
}

func (f *fakeGateway) FetchProducts(context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeGateway) FetchCategories(context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeGateway) CreateProduct(context.Context, models.ProductFormData) (models.Product, error) {
	return f.created, nil
}

func (f *fakeGateway) UpdateProduct(_ context.Context, id int64, form models.ProductFormData) (models.Product, error) {
	return models.Product{ID: id, Title: form.Title, Category: form.Category}, nil
}

func (f *fakeGateway) DeleteProduct(context.Context, int64) error {
	return nil
}

type fakeFlags struct {
	values map[string]string
}

func (f *fakeFlags) Get(_ context.Context, key string) (string, error) { return f.values[key], nil }
func (f *fakeFlags) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}
func (f *fakeFlags) Del(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func setupRouter(t *testing.T, gw *fakeGateway) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	admin, err := store.NewAdminStore(context.Background(), &fakeFlags{values: map[string]string{}}, "admin")
	require.NoError(t, err)

	catalog := store.NewCatalogStore(gw)
	catalog.LoadProducts(context.Background())

	h := New(catalog, store.NewCartStore(), admin, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProductByID)
	api.GET("/categories", h.GetCategories)

	cart := api.Group("/cart")
	cart.GET("", h.GetCart)
	cart.POST("/add", h.AddToCart)
	cart.PUT("/:productId", h.UpdateCartQuantity)
	cart.DELETE("/clear", h.ClearCart)
	cart.DELETE("/:productId", h.RemoveFromCart)

	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", h.AdminLogin)
	adminGroup.POST("/logout", h.AdminLogout)
	products := adminGroup.Group("/products", middleware.RequireAdmin(h.Admin))
	products.POST("", h.CreateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func demoGateway() *fakeGateway {
	return &fakeGateway{
		products: []models.Product{
			{ID: 1, Title: "Introduction à Go", Price: 30, Category: "Livres"},
			{ID: 2, Title: "Cafetière", Price: 50, Category: "Maison"},
		},
		categories: []string{"Livres", "Maison"},
	}
}
