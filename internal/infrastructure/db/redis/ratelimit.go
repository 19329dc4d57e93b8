package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter per (scope, caller)
// pair. Key format: ratelimit:<scope>:<caller>, expiring after the window.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter wraps client with a limit of requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow counts one request and reports whether the caller is still within the
// window's budget.
func (l *RateLimiter) Allow(ctx context.Context, scope, caller string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, caller)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	return count <= l.limit, nil
}
