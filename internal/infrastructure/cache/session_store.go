package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL is how long an idle shopping session is kept
const DefaultSessionTTL = 30 * 24 * time.Hour

// RedisSessionStore keeps one JSON document per session under
// "shop:session:{namespace}:{sessionID}". Every read or write slides the TTL.
type RedisSessionStore[T any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store for one kind of value
// (e.g. namespace "cart")
func NewRedisSessionStore[T any](client redis.UniversalClient, namespace string, ttl time.Duration) *RedisSessionStore[T] {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionStore[T]{
		client: client,
		prefix: "shop:session:" + namespace + ":",
		ttl:    ttl,
	}
}

// Load returns the stored value and refreshes its TTL
func (s *RedisSessionStore[T]) Load(ctx context.Context, sessionID string) (*T, bool, error) {
	data, err := s.client.GetEx(ctx, s.prefix+sessionID, s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, fmt.Errorf("decode session value: %w", err)
	}
	return &value, true, nil
}

// Save stores the value with a fresh TTL
func (s *RedisSessionStore[T]) Save(ctx context.Context, sessionID string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session value: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes the value
func (s *RedisSessionStore[T]) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// MemorySessionStore is the single-instance fallback of RedisSessionStore.
// Values are stored JSON-encoded so callers never share memory with the store.
type MemorySessionStore[T any] struct {
	m   *ttlMap
	ttl time.Duration
}

// NewMemorySessionStore creates an in-memory session store; call Close to
// stop its cleanup goroutine
func NewMemorySessionStore[T any](ttl time.Duration) *MemorySessionStore[T] {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionStore[T]{m: newTTLMap(DefaultCleanupInterval), ttl: ttl}
}

// Load returns the stored value and refreshes its TTL
func (s *MemorySessionStore[T]) Load(_ context.Context, sessionID string) (*T, bool, error) {
	data, ok := s.m.touch(sessionID, s.ttl)
	if !ok {
		return nil, false, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, fmt.Errorf("decode session value: %w", err)
	}
	return &value, true, nil
}

// Save stores the value with a fresh TTL
func (s *MemorySessionStore[T]) Save(_ context.Context, sessionID string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session value: %w", err)
	}
	s.m.set(sessionID, data, s.ttl)
	return nil
}

// Delete removes the value
func (s *MemorySessionStore[T]) Delete(_ context.Context, sessionID string) error {
	s.m.delete(sessionID)
	return nil
}

// Close stops the cleanup goroutine
func (s *MemorySessionStore[T]) Close() error {
	s.m.close()
	return nil
}

var (
	_ shopping.CartStore      = (*RedisSessionStore[shopping.Cart])(nil)
	_ shopping.FavoritesStore = (*MemorySessionStore[shopping.Favorites])(nil)
)
