package middleware

import (
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"library-circulation/pkg/response"
)

// rateLimiter throttles per client IP with auto-cleanup of idle entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles ledger mutations per client IP. When rate limiting is
// disabled in config this is a no-op.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key, _, _ = net.SplitHostPort(c.Request.RemoteAddr)
		}

		if !m.limiter.allow(key) {
			ctx := c.Request.Context()
			m.l.Warnf(ctx, "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
