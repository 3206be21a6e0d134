package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"boutique_back_end/internal/backend"
	"boutique_back_end/internal/models"
)

// ObjectStorage : opérations du bucket d'images dont la passerelle a besoin
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	PublicURL(objectName string) string
	Bucket() string
	Remove(ctx context.Context, objectName string) error
}

// Gateway est la seule frontière entre l'application et le backend hébergé.
// Toutes les opérations remontent leurs erreurs à l'appelant, aucune n'est
// avalée ici.
type Gateway struct {
	rows    *backend.Client
	storage ObjectStorage
}

func New(rows *backend.Client, storage ObjectStorage) *Gateway {
	return &Gateway{rows: rows, storage: storage}
}

// FetchProducts récupère tous les produits avec leur catégorie jointe,
// normalisés, dans l'ordre renvoyé par le backend.
func (g *Gateway) FetchProducts(ctx context.Context) ([]models.Product, error) {
	params := url.Values{}
	params.Set("select", "*,categories(name)")

	rows, err := g.rows.Select(ctx, "products", params)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, Normalize(row))
	}
	return products, nil
}

// FetchCategories retourne les noms de catégories distincts et non vides.
// Un résultat vide est valide, pas une erreur.
func (g *Gateway) FetchCategories(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("select", "name")

	rows, err := g.rows.Select(ctx, "categories", params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Println("⚠️ Aucune catégorie trouvée")
		return []string{}, nil
	}

	seen := make(map[string]bool, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		name := cast.ToString(row["name"])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// FindOrCreateCategory résout un nom de catégorie en id : recherche par nom
// exact, insertion si absente. Un nom vide signifie « pas de catégorie » et
// ne déclenche aucun appel réseau. Au plus une insertion par appel ; deux
// appels quasi simultanés pour un même nom inédit peuvent toutefois insérer
// chacun leur ligne (limitation connue, non corrigée).
func (g *Gateway) FindOrCreateCategory(ctx context.Context, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("select", "id")
	params.Set("name", "eq."+name)

	existing, err := g.rows.MaybeSingle(ctx, "categories", params)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if id := cast.ToInt64(existing["id"]); id != 0 {
			return &id, nil
		}
	}

	inserted, err := g.rows.Insert(ctx, "categories", map[string]any{"name": name}, "")
	if err != nil {
		return nil, err
	}
	id := cast.ToInt64(inserted["id"])
	return &id, nil
}

// CreateProduct résout d'abord la catégorie (son échec interrompt tout),
// puis insère le produit avec une note initiale {0,0} et retourne la ligne
// créée normalisée.
func (g *Gateway) CreateProduct(ctx context.Context, form models.ProductFormData) (models.Product, error) {
	categoryID, err := g.FindOrCreateCategory(ctx, form.Category)
	if err != nil {
		return models.Product{}, err
	}

	row := map[string]any{
		"title":       form.Title,
		"price":       form.Price,
		"description": form.Description,
		"image":       form.Image,
		"rating":      map[string]any{"rate": 0, "count": 0},
	}
	if categoryID != nil {
		row["category_id"] = *categoryID
	}

	created, err := g.rows.Insert(ctx, "products", row, "*,categories(name)")
	if err != nil {
		return models.Product{}, err
	}
	return Normalize(created), nil
}

// UpdateProduct écrit systématiquement titre/prix/description/image ;
// la catégorie n'est touchée que si le formulaire en fournit une
// (sémantique de mise à jour partielle, dernier écrivain gagnant).
func (g *Gateway) UpdateProduct(ctx context.Context, id int64, form models.ProductFormData) (models.Product, error) {
	row := map[string]any{
		"title":       form.Title,
		"price":       form.Price,
		"description": form.Description,
		"image":       form.Image,
	}
	if form.Category != "" {
		categoryID, err := g.FindOrCreateCategory(ctx, form.Category)
		if err != nil {
			return models.Product{}, err
		}
		if categoryID != nil {
			row["category_id"] = *categoryID
		}
	}

	params := url.Values{}
	params.Set("id", "eq."+strconv.FormatInt(id, 10))

	updated, err := g.rows.Update(ctx, "products", params, row, "*,categories(name)")
	if err != nil {
		return models.Product{}, err
	}
	return Normalize(updated), nil
}

// DeleteProduct supprime un produit par id. Un id inexistant est un succès
// silencieux : c'est le backend qui en décide, pas nous.
func (g *Gateway) DeleteProduct(ctx context.Context, id int64) error {
	params := url.Values{}
	params.Set("id", "eq."+strconv.FormatInt(id, 10))
	return g.rows.Delete(ctx, "products", params)
}

// UploadImage envoie une image sous un nom dérivé unique et retourne son
// URL publique.
func (g *Gateway) UploadImage(ctx context.Context, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	objectName := imageObjectName(fileName)
	if err := g.storage.Upload(ctx, objectName, r, size, contentType); err != nil {
		return "", err
	}
	return g.storage.PublicURL(objectName), nil
}

// DeleteImage accepte une URL publique complète ou un chemin nu dans le
// bucket, et supprime l'objet correspondant.
func (g *Gateway) DeleteImage(ctx context.Context, urlOrPath string) error {
	return g.storage.Remove(ctx, imagePath(urlOrPath, g.storage.Bucket()))
}

// imageObjectName dérive un nom d'objet unique : horodatage + suffixe
// aléatoire, extension d'origine conservée (jpg par défaut).
func imageObjectName(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		ext = "jpg"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("products/%d_%s.%s", time.Now().UnixMilli(), suffix, ext)
}

// imagePath extrait le chemin après le segment bucket quand on reçoit une
// URL complète ; sinon la valeur est déjà un chemin.
func imagePath(urlOrPath, bucket string) string {
	marker := "/" + bucket + "/"
	if idx := strings.Index(urlOrPath, marker); idx >= 0 {
		return urlOrPath[idx+len(marker):]
	}
	return urlOrPath
}
