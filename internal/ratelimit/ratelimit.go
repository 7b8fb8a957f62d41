package ratelimit

import (
	"context"
	"fmt"
	"time"

	"gamejam-portal-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=ratelimit.go -destination=../mocks/ratelimit_mocks.go -package=mocks

// Limiter decides whether another attempt for key is allowed in the current window
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter stored in Redis
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit hits per window under prefix
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

// NewClient connects to the Redis instance at url
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Allow increments the window counter. Redis failures fail open and are logged.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + ":" + key
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warnf("rate limiter unavailable for %s", l.prefix)
		return true, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			logger.WithContext(ctx).WithError(err).Warnf("rate limiter could not set expiry for %s", l.prefix)
		}
	}
	return count <= l.limit, nil
}

// Noop allows everything; used when REDIS_URL is empty
type Noop struct{}

// Allow always returns true
func (Noop) Allow(context.Context, string) (bool, error) {
	return true, nil
}
