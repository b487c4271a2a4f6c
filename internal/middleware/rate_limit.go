package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"product-admin/internal/cache"
	"product-admin/internal/metrics"
)

// Idle buckets are dropped after this long; by then they have normally refilled.
const limiterIdleTTL = 10 * time.Minute

func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

func rejectTooMany(c *gin.Context, limiter string) {
	metrics.RateLimitRejected.WithLabelValues(limiter).Inc()
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Too many requests"})
}

// RateLimit enforces an in-memory token bucket per client IP.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := cache.New[*rate.Limiter](limiterIdleTTL, limiterIdleTTL/2)

	return func(c *gin.Context) {
		lim := limiters.GetOrCreate(clientKey(c), func() *rate.Limiter {
			return rate.NewLimiter(rate.Limit(rps), burst)
		})
		if !lim.Allow() {
			c.Header("Retry-After", "1")
			rejectTooMany(c, "memory")
			return
		}
		c.Next()
	}
}
