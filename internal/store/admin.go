package store

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"boutique_back_end/internal/utils"
)

// Clé du drapeau d'authentification admin dans le stockage clé/valeur
const adminAuthKey = "admin_auth"

// FlagStorage : persistance clé/valeur du drapeau de session
// (Redis en production). Get retourne "" pour une clé absente.
type FlagStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// AdminStore : garde de session du panneau d'administration. Un seul code
// partagé, un seul drapeau, pas d'identité par utilisateur — c'est un
// mécanisme de substitution assumé, pas un vrai système d'authentification
// (ni limitation de tentatives, ni expiration).
type AdminStore struct {
	flags    FlagStorage
	codeHash string

	mu              sync.RWMutex
	isAuthenticated bool
}

// NewAdminStore hache le code partagé et initialise le drapeau depuis sa
// forme persistée.
func NewAdminStore(ctx context.Context, flags FlagStorage, code string) (*AdminStore, error) {
	codeHash, err := utils.HashSecret(code)
	if err != nil {
		return nil, err
	}

	val, err := flags.Get(ctx, adminAuthKey)
	if err != nil {
		return nil, err
	}

	return &AdminStore{
		flags:           flags,
		codeHash:        codeHash,
		isAuthenticated: val == "true",
	}, nil
}

// Login compare le code au code partagé (comparaison en temps constant).
// En cas de succès le drapeau est levé et persisté ; sinon l'état
// antérieur reste inchangé. Retourne le résultat de la comparaison.
func (s *AdminStore) Login(ctx context.Context, code string) bool {
	ok, err := utils.VerifySecret(code, s.codeHash)
	if err != nil || !ok {
		return false
	}

	s.mu.Lock()
	s.isAuthenticated = true
	s.mu.Unlock()

	if err := s.flags.Set(ctx, adminAuthKey, "true"); err != nil {
		log.Println("⚠️ Impossible de persister le drapeau admin:", err)
	}
	return true
}

// Logout abaisse le drapeau et efface sa forme persistée
func (s *AdminStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.isAuthenticated = false
	s.mu.Unlock()

	if err := s.flags.Del(ctx, adminAuthKey); err != nil {
		log.Println("⚠️ Impossible d'effacer le drapeau admin:", err)
	}
}

func (s *AdminStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// redisFlags adosse FlagStorage à Redis
type redisFlags struct {
	client *redis.Client
}

func NewRedisFlagStorage(client *redis.Client) FlagStorage {
	return &redisFlags{client: client}
}

func (r *redisFlags) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (r *redisFlags) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisFlags) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
