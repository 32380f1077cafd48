package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginGuard throttles login attempts per email using a fixed-window counter
// in Redis. Key format: login:attempts:<email>
type LoginGuard struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
// Non-positive maxAttempts or window fall back to defaults.
func NewLoginGuard(client *redis.Client, maxAttempts int, window time.Duration) *LoginGuard {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginGuard{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether another attempt for email is permitted.
func (g *LoginGuard) Allow(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return true, fmt.Errorf("login guard check: %w", err)
	}
	return n < int64(g.maxAttempts), nil
}

// RecordFailure counts a failed attempt; the window starts at the first one.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	pipe := g.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, g.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login guard record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login:attempts:" + email
}
