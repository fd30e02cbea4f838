package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// RedisRateLimiter provides IP-based rate limiting backed by Redis, so the
// limit holds across multiple API instances.
type RedisRateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRedisRateLimiter creates a new Redis-backed rate limiter.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RedisRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			// Redis unavailable, fail open rather than blocking traffic
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the given key and reports whether the
// request is still within the window limit.
func (rl *RedisRateLimiter) allow(c *gin.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	ctx := c.Request.Context()

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// First hit in the window sets the expiry
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	return count <= int64(rl.maxAttempts), nil
}

// Reset clears all rate limit counters (useful for testing).
func (rl *RedisRateLimiter) Reset(c *gin.Context) error {
	iter := rl.client.Scan(c.Request.Context(), 0, "ratelimit:*", 0).Iterator()
	for iter.Next(c.Request.Context()) {
		if err := rl.client.Del(c.Request.Context(), iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
