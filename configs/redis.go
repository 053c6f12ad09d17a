package configs

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when no address is configured; callers treat a
// nil client as "locking disabled".
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
