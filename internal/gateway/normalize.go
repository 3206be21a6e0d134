package gateway

import (
	"github.com/spf13/cast"

	"boutique_back_end/internal/models"
)

// Normalize convertit une ligne brute du backend en Product canonique.
// Les lignes n'ont pas toutes la même forme selon la requête qui les a
// produites ; chaque champ optionnel reçoit sa valeur par défaut et le
// prix est ramené en flottant même s'il arrive en chaîne numérique.
// La fonction est totale sur toute map non nulle : la passerelle garantit
// qu'une ligne existe sur chaque chemin de succès.
func Normalize(row map[string]any) models.Product {
	p := models.Product{
		ID:          cast.ToInt64(row["id"]),
		Title:       cast.ToString(row["title"]),
		Price:       cast.ToFloat64(row["price"]),
		Description: cast.ToString(row["description"]),
		Category:    categoryName(row),
		Image:       cast.ToString(row["image"]),
	}

	if raw, ok := row["category_id"]; ok && raw != nil {
		id := cast.ToInt64(raw)
		p.CategoryID = &id
	}

	if rating, ok := row["rating"].(map[string]any); ok {
		p.Rating = models.Rating{
			Rate:  cast.ToFloat64(rating["rate"]),
			Count: cast.ToInt(rating["count"]),
		}
	}

	if created := cast.ToString(row["created_at"]); created != "" {
		p.CreatedAt = &created
	}

	return p
}

// categoryName résout le nom de catégorie dans cet ordre : liste d'objets
// liés (premier nom), objet lié unique, champ plat. Absence → "".
func categoryName(row map[string]any) string {
	switch related := row["categories"].(type) {
	case []any:
		if len(related) > 0 {
			if first, ok := related[0].(map[string]any); ok {
				return cast.ToString(first["name"])
			}
		}
	case map[string]any:
		return cast.ToString(related["name"])
	}
	return cast.ToString(row["category"])
}
