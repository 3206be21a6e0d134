package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetProducts retourne la liste filtrée. Les paramètres ?category= et ?q=
// écrivent les filtres du store avant lecture (les vues partagent le même
// état de recherche, comme dans l'interface).
func (h *Handler) GetProducts(c *gin.Context) {
	if category, ok := c.GetQuery("category"); ok {
		h.Catalog.SetSelectedCategory(category)
	}
	if q, ok := c.GetQuery("q"); ok {
		h.Catalog.SetSearchQuery(q)
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   h.Catalog.FilteredProducts(),
		"is_loading": h.Catalog.IsLoading(),
	})
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, ok := h.Catalog.GetProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// RefreshProducts recharge le catalogue depuis le backend. Un échec laisse
// simplement l'état précédent en place (le store journalise déjà).
func (h *Handler) RefreshProducts(c *gin.Context) {
	h.Catalog.LoadProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message":    "Catalogue rechargé",
		"products":   len(h.Catalog.Products()),
		"categories": len(h.Catalog.Categories()),
	})
}
