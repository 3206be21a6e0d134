package storage

import "fmt"

// StorageError : échec d'une opération sur le stockage objet
type StorageError struct {
	Op      string
	Message string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("erreur stockage (%s): %s", e.Op, e.Message)
}
