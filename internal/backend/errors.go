package backend

import "fmt"

// BackendError : échec d'une requête vers l'API de données hébergée
// (transport ou réponse non-2xx). Jamais avalée : toujours remontée
// à l'appelant.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Status == 0 {
		return "erreur backend: " + e.Message
	}
	return fmt.Sprintf("erreur backend (%d): %s", e.Status, e.Message)
}
