package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) cartState() gin.H {
	return gin.H{
		"items":       h.Cart.Items(),
		"total_price": h.Cart.TotalPrice(),
		"total_count": h.Cart.TotalCount(),
	}
}

// GetCart retourne le panier et ses totaux dérivés
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartState())
}

//
// 🟢 POST /api/cart/add
//
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID int64 `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, ok := h.Catalog.GetProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Cart.AddToCart(product)
	c.JSON(http.StatusOK, h.cartState())
}

//
// 🔁 PUT /api/cart/:productId — fixe la quantité telle quelle, sans borne
// (le formulaire côté client est responsable des valeurs autorisées)
//
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	h.Cart.UpdateQuantity(productID, input.Quantity)
	c.JSON(http.StatusOK, h.cartState())
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	h.Cart.RemoveFromCart(productID)
	c.JSON(http.StatusOK, h.cartState())
}

//
// 🧹 DELETE /api/cart/clear
//
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
