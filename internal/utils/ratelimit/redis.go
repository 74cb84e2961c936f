package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rate_limit:"

type RedisLimiter struct {
	client redis.Cmdable
	window time.Duration
	limit  int64
}

func NewRedisLimiter(client redis.Cmdable, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow counts the request against key. The window starts with the first request.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	rateKey := keyPrefix + key
	count, err := l.client.Incr(ctx, rateKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err = l.client.Expire(ctx, rateKey, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to start rate limit window: %w", err)
		}
	}
	if count <= l.limit {
		return newResult(count, l.limit, 0), nil
	}

	ttl, err := l.client.TTL(ctx, rateKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	if ttl < 0 {
		// the counter lost its expiry, restart the window
		if err = l.client.Expire(ctx, rateKey, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to restart rate limit window: %w", err)
		}
		ttl = l.window
	}
	return newResult(count, l.limit, ttl), nil
}
