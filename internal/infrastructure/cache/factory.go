package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backend hands out session, idempotency and token stores that share one
// Redis client, or in-memory stand-ins when Redis is not available.
type Backend struct {
	client                redis.UniversalClient
	sessionTTL            time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
	closers               []io.Closer
}

// BackendOption is a functional option for configuring the backend
type BackendOption func(*Backend)

// WithLogger sets the logger for the backend
func WithLogger(logger *zap.Logger) BackendOption {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory stores when
// Redis is configured but unreachable. Default is true.
func WithInMemoryFallback(allow bool) BackendOption {
	return func(b *Backend) {
		b.allowInMemoryFallback = allow
	}
}

// WithSessionTTL sets the idle lifetime of shopping sessions
func WithSessionTTL(ttl time.Duration) BackendOption {
	return func(b *Backend) {
		b.sessionTTL = ttl
	}
}

// WithClient uses an existing client instead of dialing one
func WithClient(client redis.UniversalClient) BackendOption {
	return func(b *Backend) {
		b.client = client
	}
}

// NewBackend connects to Redis when configured. An empty redis.host selects
// in-memory stores outright.
func NewBackend(ctx context.Context, cfg config.RedisConfig, opts ...BackendOption) (*Backend, error) {
	b := &Backend{
		sessionTTL:            DefaultSessionTTL,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.client != nil {
		return b, nil
	}
	if !cfg.Enabled() {
		b.logger.Info("Redis not configured, using in-memory session and idempotency stores")
		return b, nil
	}

	client, err := NewRedisClient(ctx, cfg)
	if err == nil {
		b.client = client
		b.closers = append(b.closers, client)
		b.logger.Info("Using Redis for sessions and idempotency", zap.String("addr", cfg.Addr()))
		return b, nil
	}
	if !b.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required but unavailable: %w", err)
	}
	b.logger.Warn("Redis unavailable, falling back to in-memory stores. "+
		"Sessions will not survive restarts or be shared across instances.",
		zap.Error(err),
	)
	return b, nil
}

// NewRedisClient dials Redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Client returns the Redis client, nil when running in memory
func (b *Backend) Client() redis.UniversalClient {
	return b.client
}

// IsDistributed reports whether state is shared through Redis
func (b *Backend) IsDistributed() bool {
	return b.client != nil
}

// IdempotencyStore creates the store used for Idempotency-Key handling
func (b *Backend) IdempotencyStore() shared.IdempotencyStore {
	if b.client != nil {
		return NewRedisIdempotencyStore(b.client, DefaultIdempotencyPrefix)
	}
	store := NewInMemoryIdempotencyStore()
	b.closers = append(b.closers, store)
	return store
}

// NewSessionStore creates a session store for one namespace on the backend
func NewSessionStore[T any](b *Backend, namespace string) shopping.SessionStore[T] {
	if b.client != nil {
		return NewRedisSessionStore[T](b.client, namespace, b.sessionTTL)
	}
	store := NewMemorySessionStore[T](b.sessionTTL)
	b.closers = append(b.closers, store)
	return store
}

// Close stops in-memory sweepers and closes the owned Redis client
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
