package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/backend"
	"boutique_back_end/internal/config"
	"boutique_back_end/internal/database"
	"boutique_back_end/internal/gateway"
	"boutique_back_end/internal/handlers"
	"boutique_back_end/internal/routes"
	"boutique_back_end/internal/storage"
	"boutique_back_end/internal/store"
)

func main() {
	config.Load()

	ctx := context.Background()

	rdb, err := database.ConnectRedis(ctx)
	if err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}

	objectStore, err := storage.Connect(ctx)
	if err != nil {
		log.Fatal("❌ Erreur connexion MinIO:", err)
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		log.Fatal("❌ BACKEND_URL manquant dans .env")
	}
	rows := backend.NewClient(backendURL, os.Getenv("BACKEND_API_KEY"))

	gw := gateway.New(rows, objectStore)

	adminCode := os.Getenv("ADMIN_CODE")
	if adminCode == "" {
		adminCode = "admin"
	}
	admin, err := store.NewAdminStore(ctx, store.NewRedisFlagStorage(rdb), adminCode)
	if err != nil {
		log.Fatal("❌ Erreur initialisation garde admin:", err)
	}

	catalog := store.NewCatalogStore(gw)
	cart := store.NewCartStore()

	// Premier chargement : un échec laisse le catalogue vide, sans retry
	catalog.LoadProducts(ctx)

	r := gin.Default()
	routes.RegisterRoutes(r, handlers.New(catalog, cart, admin, gw))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur boutique lancé sur le port", port)
	r.Run(":" + port)
}
