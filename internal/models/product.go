package models

// Rating : note agrégée d'un produit (moyenne + nombre d'avis)
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product est la forme canonique d'une entrée du catalogue. Tout produit
// présent dans l'état des stores est passé par le normaliseur — jamais
// une ligne brute du backend.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

// ProductFormData : données du formulaire admin. La catégorie est un nom,
// pas un id — la passerelle la résout en category_id avant écriture.
type ProductFormData struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}
