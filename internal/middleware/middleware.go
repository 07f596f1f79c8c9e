package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"meeting-assistant/pkg/response"
)

// RequestLogger logs one line per request with method, path, status and latency.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// RateLimit rejects requests over the configured budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
