package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/handlers"
	"boutique_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	allowed := []string{"http://localhost:5173"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		allowed = strings.Split(origins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Vitrine
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProductByID)
	api.POST("/products/refresh", h.RefreshProducts)
	api.GET("/categories", h.GetCategories)

	// Panier
	cart := api.Group("/cart")
	cart.GET("", h.GetCart)
	cart.POST("/add", h.AddToCart)
	cart.PUT("/:productId", h.UpdateCartQuantity)
	cart.DELETE("/clear", h.ClearCart)
	cart.DELETE("/:productId", h.RemoveFromCart)

	// Administration — tout ce qui touche au catalogue passe par la garde
	admin := api.Group("/admin")
	admin.POST("/login", h.AdminLogin)
	admin.POST("/logout", h.AdminLogout)

	products := admin.Group("/products", middleware.RequireAdmin(h.Admin))
	products.POST("", h.CreateProduct)
	products.POST("/image", h.UploadProductImage)
	products.DELETE("/image", h.DeleteProductImage)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
}
