package store

import (
	"sync"

	"boutique_back_end/internal/models"
)

// CartStore : panier en mémoire. L'ordre d'insertion est l'ordre
// d'affichage, un seul CartItem par produit. Les totaux sont dérivés :
// recalculés à chaque lecture, jamais stockés. Aucune persistance entre
// deux lancements du serveur.
type CartStore struct {
	mu    sync.RWMutex
	items []models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart ajoute un produit : +1 s'il est déjà dans le panier,
// sinon nouvel item avec quantité 1. Pas de plafond de quantité.
func (s *CartStore) AddToCart(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart retire un produit du panier (aucun effet s'il est absent)
func (s *CartStore) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity fixe directement la quantité d'un item (aucun effet s'il
// est absent). Aucune borne n'est imposée ici : le formulaire côté client
// est responsable des valeurs autorisées.
func (s *CartStore) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Items retourne une copie de l'état courant du panier
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalPrice : somme des prix × quantités
func (s *CartStore) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalCount : nombre total d'articles (le badge du panier dans l'en-tête)
func (s *CartStore) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Clear vide entièrement le panier
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
