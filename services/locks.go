package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Locker serializes user creation per company so the limit check cannot be
// raced into over-admission.
type Locker interface {
	// Lock blocks until the key is held or ctx/retry budget runs out; the
	// returned func releases it.
	Lock(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

type RedisLocker struct {
	locker *redislock.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{locker: redislock.New(client)}
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	lock, err := l.locker.Obtain(ctx, key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 50),
	})
	if err != nil {
		return nil, fmt.Errorf("obtain lock %q: %w", key, err)
	}
	return func() { _ = lock.Release(context.Background()) }, nil
}
