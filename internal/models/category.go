package models

// Category : le nom sert de clé naturelle (résolution find-or-create
// côté passerelle, pas deux catégories avec le même nom en pratique)
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
