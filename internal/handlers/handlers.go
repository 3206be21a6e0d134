package handlers

import (
	"boutique_back_end/internal/gateway"
	"boutique_back_end/internal/store"
)

// Handler regroupe les stores et la passerelle construits au démarrage.
// Pas d'accès globaux : tout passe par cette structure.
type Handler struct {
	Catalog *store.CatalogStore
	Cart    *store.CartStore
	Admin   *store.AdminStore
	Gateway *gateway.Gateway
}

func New(catalog *store.CatalogStore, cart *store.CartStore, admin *store.AdminStore, gw *gateway.Gateway) *Handler {
	return &Handler{Catalog: catalog, Cart: cart, Admin: admin, Gateway: gw}
}
