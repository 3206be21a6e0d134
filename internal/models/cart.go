package models

// CartItem : un produit dans le panier. Un seul item par produit,
// l'unicité est garantie par le store panier à chaque mutation.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
