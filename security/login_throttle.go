package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle bounds login attempts per subject within a rolling window,
// backed by a Redis counter with an expiry. It fails open: if Redis is
// unreachable the attempt is allowed and authentication decides.
type LoginThrottle struct {
	redis  *redis.Client
	max    int
	window time.Duration
}

func NewLoginThrottle(redisClient *redis.Client, max int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		redis:  redisClient,
		max:    max,
		window: window,
	}
}

// Allow reports whether another attempt for key is within the limit.
func (t *LoginThrottle) Allow(ctx context.Context, key string) bool {
	counterKey := fmt.Sprintf("throttle:login:%s", key)

	count, err := t.redis.Incr(ctx, counterKey).Result()
	if err != nil {
		return true
	}

	if count == 1 {
		t.redis.Expire(ctx, counterKey, t.window)
	}

	return count <= int64(t.max)
}
