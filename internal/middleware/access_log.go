package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"selection-assistant/pkg/metrics"
)

// AccessLog logs each request and records its duration.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(status), duration)
		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, duration)
	}
}
