package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"boutique_back_end/internal/models"
)

// ProductGateway : opérations distantes dont le catalogue a besoin
type ProductGateway interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, form models.ProductFormData) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, form models.ProductFormData) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CatalogStore : cache en mémoire des produits et catégories, filtres de
// recherche, et orchestration des écritures via la passerelle. Toutes les
// mutations d'état sont synchrones vis-à-vis de l'opération appelante.
type CatalogStore struct {
	gw ProductGateway

	mu               sync.RWMutex
	products         []models.Product
	categories       []string
	isLoading        bool
	searchQuery      string
	selectedCategory string
}

func NewCatalogStore(gw ProductGateway) *CatalogStore {
	return &CatalogStore{gw: gw}
}

// LoadProducts recharge produits et catégories en parallèle et attend les
// deux. Si l'un des deux échoue, l'état précédent est conservé tel quel
// (jamais de remplacement partiel) et l'erreur est seulement journalisée.
// Le drapeau de chargement est toujours abaissé en sortie.
func (s *CatalogStore) LoadProducts(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var (
		products   []models.Product
		categories []string
	)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		products, err = s.gw.FetchProducts(ctx)
		return err
	})
	grp.Go(func() error {
		var err error
		categories, err = s.gw.FetchCategories(ctx)
		return err
	})

	if err := grp.Wait(); err != nil {
		log.Println("❌ Erreur chargement du catalogue:", err)
		return
	}

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.mu.Unlock()
}

// FilteredProducts applique le filtre de catégorie (correspondance exacte)
// puis la recherche plein texte sur titre, description et catégorie
// (insensible à la casse, requête épurée des espaces). Les deux filtres se
// composent en ET logique.
func (s *CatalogStore) FilteredProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Product, len(s.products))
	copy(result, s.products)

	if s.selectedCategory != "" {
		kept := result[:0]
		for _, p := range result {
			if p.Category == s.selectedCategory {
				kept = append(kept, p)
			}
		}
		result = kept
	}

	if q := strings.ToLower(strings.TrimSpace(s.searchQuery)); q != "" {
		kept := result[:0]
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Category), q) {
				kept = append(kept, p)
			}
		}
		result = kept
	}

	return result
}

// GetProductByID : recherche pure dans l'état courant
func (s *CatalogStore) GetProductByID(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct crée le produit via la passerelle puis l'insère en tête de
// liste ; sa catégorie rejoint la liste si elle est inédite. L'erreur est
// journalisée puis remontée.
func (s *CatalogStore) AddProduct(ctx context.Context, form models.ProductFormData) (models.Product, error) {
	created, err := s.gw.CreateProduct(ctx, form)
	if err != nil {
		log.Println("❌ Création produit échouée:", err)
		return models.Product{}, err
	}

	s.mu.Lock()
	s.products = append([]models.Product{created}, s.products...)
	s.appendCategoryLocked(created.Category)
	s.mu.Unlock()

	return created, nil
}

// UpdateProduct met à jour via la passerelle puis remplace l'entrée en
// place (sa position dans la liste est conservée).
func (s *CatalogStore) UpdateProduct(ctx context.Context, id int64, form models.ProductFormData) (models.Product, error) {
	updated, err := s.gw.UpdateProduct(ctx, id, form)
	if err != nil {
		log.Println("❌ Mise à jour produit échouée:", err)
		return models.Product{}, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = updated
			break
		}
	}
	s.appendCategoryLocked(updated.Category)
	s.mu.Unlock()

	return updated, nil
}

// DeleteProduct supprime via la passerelle puis retire l'entrée de l'état
func (s *CatalogStore) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		log.Println("❌ Suppression produit échouée:", err)
		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()

	return nil
}

func (s *CatalogStore) appendCategoryLocked(name string) {
	if name == "" {
		return
	}
	for _, c := range s.categories {
		if c == name {
			return
		}
	}
	s.categories = append(s.categories, name)
}

func (s *CatalogStore) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

func (s *CatalogStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CatalogStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *CatalogStore) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

func (s *CatalogStore) SetSelectedCategory(category string) {
	s.mu.Lock()
	s.selectedCategory = category
	s.mu.Unlock()
}
