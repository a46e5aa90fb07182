package shared

import (
	"context"
	"time"
)

// IdempotencyStore records client request keys so a retried write is
// detected. A key is claimed before the write and released if it fails.
type IdempotencyStore interface {
	// Claim reports true when key was free and is now held for ttl
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Claimed(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
	Close() error
}
