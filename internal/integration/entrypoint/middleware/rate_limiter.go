package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// visitor counts requests from one client within the current window.
type visitor struct {
	count     int
	windowEnd time.Time
}

// RateLimiter is an in-process fixed-window rate limiter keyed by client IP.
// It is the fallback when no Redis connection is available, so the limit
// only holds per API instance.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

// NewRateLimiter creates a rate limiter with the default login limit of
// five attempts per minute.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(5, time.Minute)
}

// NewRateLimiterWithConfig creates a rate limiter with a custom limit and window.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
}

// Middleware returns a Gin handler that rejects clients over the limit
// with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
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

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok || now.After(v.windowEnd) {
		// Expired windows for other clients are swept here so the map
		// does not grow without bound.
		rl.sweep(now)
		rl.visitors[key] = &visitor{count: 1, windowEnd: now.Add(rl.window)}
		return true
	}

	if v.count >= rl.limit {
		return false
	}
	v.count++
	return true
}

// sweep removes expired entries. Callers must hold the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, v := range rl.visitors {
		if now.After(v.windowEnd) {
			delete(rl.visitors, key)
		}
	}
}

// Reset clears all counters.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.visitors = make(map[string]*visitor)
}
