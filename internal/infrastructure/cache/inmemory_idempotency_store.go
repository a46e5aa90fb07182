package cache

import (
	"context"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
)

// InMemoryIdempotencyStore keeps claimed keys in process memory for
// single-instance deployments and tests
type InMemoryIdempotencyStore struct {
	keys *ttlMap
}

// NewInMemoryIdempotencyStore starts a sweeper goroutine; Close stops it
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	return &InMemoryIdempotencyStore{keys: newTTLMap(DefaultCleanupInterval)}
}

func (s *InMemoryIdempotencyStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return s.keys.setNX(key, nil, ttl), nil
}

func (s *InMemoryIdempotencyStore) Claimed(_ context.Context, key string) (bool, error) {
	_, ok := s.keys.get(key)
	return ok, nil
}

func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.keys.delete(key)
	return nil
}

// Close is idempotent
func (s *InMemoryIdempotencyStore) Close() error {
	s.keys.close()
	return nil
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
