package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/store"
)

// RequireAdmin bloque les routes d'administration tant que la garde de
// session n'est pas levée. Le front redirige vers la vue de connexion
// en recevant ce 401.
func RequireAdmin(admin *store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !admin.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Accès réservé aux administrateurs",
				"redirect": "/admin/login",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
