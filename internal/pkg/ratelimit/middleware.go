package ratelimit

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mubashirjatoi/todo-api/internal/pkg/response"
)

// Middleware rejects requests over the limit, keyed by client IP.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			c.Header("Retry-After", limiter.ResetTime(key).Format(time.RFC3339))
			response.TooManyRequests(c, "Too many requests. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
