package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env s'il existe ; sinon on continue avec les
// variables d'environnement du système.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec l'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}
}
