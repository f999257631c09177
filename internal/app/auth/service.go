// Package auth verifies the shared API key guarding mutating operations.
// The accepted key lives as a SHA3-256 hash in the settings singleton row;
// the gate fails closed whenever that row cannot be read.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/sha3"

	"github.com/cheneysan/link-shortener/internal/domain"
)

const storedHashCacheKey = "global_api_key_hash"

type SettingsRepo interface {
	GetGlobalKeyHash(ctx context.Context) (string, error)
}

type Service struct {
	repo  SettingsRepo
	cache *cache.Cache
}

// New builds the gate. ttl bounds how stale the in-memory copy of the stored
// hash may get; a rotated key is picked up within one ttl.
func New(repo SettingsRepo, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Verify checks apiKey against the stored hash. An empty key is rejected
// before any store access. Failure to obtain the stored hash is surfaced
// as-is (infrastructure, fail closed); a mismatch is ErrUnauthenticated.
func (s *Service) Verify(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return domain.ErrUnauthenticated
	}

	stored, err := s.storedHash(ctx)
	if err != nil {
		return fmt.Errorf("auth verify: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(HashKey(apiKey)), []byte(stored)) != 1 {
		return domain.ErrUnauthenticated
	}

	return nil
}

func (s *Service) storedHash(ctx context.Context) (string, error) {
	if v, ok := s.cache.Get(storedHashCacheKey); ok {
		return v.(string), nil
	}

	hash, err := s.repo.GetGlobalKeyHash(ctx)
	if err != nil {
		return "", err
	}

	s.cache.SetDefault(storedHashCacheKey, hash)

	return hash, nil
}

// HashKey renders the SHA3-256 digest of key as lowercase hex, the format of
// the settings row.
func HashKey(key string) string {
	sum := sha3.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}
