package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/models"
)

//
// 🔑 POST /api/admin/login
//
func (h *Handler) AdminLogin(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !h.Admin.Login(c.Request.Context(), input.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code invalide"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connexion admin réussie"})
}

func (h *Handler) AdminLogout(c *gin.Context) {
	h.Admin.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

//
// 🟢 POST /api/admin/products
//
func (h *Handler) CreateProduct(c *gin.Context) {
	var form models.ProductFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Catalog.AddProduct(c.Request.Context(), form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

//
// 🟡 PUT /api/admin/products/:id
//
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var form models.ProductFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Catalog.UpdateProduct(c.Request.Context(), id, form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

//
// 🔴 DELETE /api/admin/products/:id
//
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if err := h.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}

//
// 🖼️ POST /api/admin/products/image (multipart)
//
func (h *Handler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}
	defer file.Close()

	imageURL, err := h.Gateway.UploadImage(
		c.Request.Context(),
		header.Filename,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "✅ Image uploadée avec succès",
		"image_url": imageURL,
	})
}

//
// 🗑️ DELETE /api/admin/products/image — par URL publique ou chemin nu
//
func (h *Handler) DeleteProductImage(c *gin.Context) {
	var input struct {
		ImageURL string `json:"image_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Gateway.DeleteImage(c.Request.Context(), input.ImageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression image: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "🗑️ Image supprimée avec succès"})
}
