package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes admin tokens before they expire. Logout revokes a
// single token by its jti; a password change revokes every token of the
// subject issued before it.
type TokenBlacklist interface {
	// Revoke rejects the token with this jti for ttl, which should be the
	// token's remaining lifetime
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)

	RevokeSubject(ctx context.Context, subject string, ttl time.Duration) error
	// IsSubjectRevoked compares at millisecond precision, the precision of
	// iat. A token issued in the revocation millisecond counts as revoked.
	IsSubjectRevoked(ctx context.Context, subject string, issuedAt time.Time) (bool, error)
}

const blacklistPrefix = "auth:revoked:"

// RedisTokenBlacklist shares revocations between instances
type RedisTokenBlacklist struct {
	client redis.UniversalClient
}

func NewRedisTokenBlacklist(client redis.UniversalClient) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

func jtiKey(jti string) string         { return blacklistPrefix + "jti:" + jti }
func subjectKey(subject string) string { return blacklistPrefix + "sub_ms:" + subject }

func (b *RedisTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, jtiKey(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return n == 1, nil
}

func (b *RedisTokenBlacklist) RevokeSubject(ctx context.Context, subject string, ttl time.Duration) error {
	if err := b.client.Set(ctx, subjectKey(subject), time.Now().UnixMilli(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke subject %s: %w", subject, err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsSubjectRevoked(ctx context.Context, subject string, issuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, subjectKey(subject)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("check subject revocation: %w", err)
	}
	revokedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse revocation time %q: %w", raw, err)
	}
	return revokedBy(issuedAt, revokedAt), nil
}

// revokedBy reports whether a token issued at issuedAt predates a revocation
// recorded at revokedAtMilli
func revokedBy(issuedAt time.Time, revokedAtMilli int64) bool {
	return issuedAt.UnixMilli() <= revokedAtMilli
}

// InMemoryTokenBlacklist is used when Redis is not configured. Revocations
// are lost on restart and not shared between instances.
type InMemoryTokenBlacklist struct {
	mu       sync.Mutex
	tokens   map[string]time.Time // jti -> expiry
	subjects map[string]int64     // subject -> revocation unix millisecond
}

func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		tokens:   make(map[string]time.Time),
		subjects: make(map[string]int64),
	}
}

func (b *InMemoryTokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, exp := range b.tokens {
		if now.After(exp) {
			delete(b.tokens, k)
		}
	}
	b.tokens[jti] = now.Add(ttl)
	return nil
}

func (b *InMemoryTokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.tokens[jti]
	if ok && time.Now().After(exp) {
		delete(b.tokens, jti)
		return false, nil
	}
	return ok, nil
}

func (b *InMemoryTokenBlacklist) RevokeSubject(_ context.Context, subject string, _ time.Duration) error {
	b.mu.Lock()
	b.subjects[subject] = time.Now().UnixMilli()
	b.mu.Unlock()
	return nil
}

func (b *InMemoryTokenBlacklist) IsSubjectRevoked(_ context.Context, subject string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	revokedAt, ok := b.subjects[subject]
	b.mu.Unlock()
	return ok && revokedBy(issuedAt, revokedAt), nil
}

var (
	_ TokenBlacklist = (*RedisTokenBlacklist)(nil)
	_ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
)
