package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgErrors "air-cargo-assistant/pkg/errors"
	"air-cargo-assistant/pkg/response"
)

// Tracked clients are capped; evicting a stale client just resets its
// allowance, which is acceptable for an abuse guard.
const rateLimitClientCap = 4096

// RateLimit enforces a per-client request rate keyed by client IP.
func (m Middleware) RateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	limiters, err := lru.New[string, *rate.Limiter](rateLimitClientCap)
	if err != nil {
		panic(err)
	}
	limit := rate.Limit(float64(requestsPerMinute) / 60.0)

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}
