package ratelimit

import (
	"time"

	"github.com/lazygpt/gateway/internal/storage"
)

// NewLimiter picks the backend: redis-backed fixed window when a redis
// client is available, in-process otherwise.
func NewLimiter(redisClient *storage.RedisClient, limit int, window time.Duration) Limiter {
	if redisClient != nil {
		return NewFixedWindow(redisClient, limit, window)
	}
	return NewMemoryWindow(limit, window)
}
