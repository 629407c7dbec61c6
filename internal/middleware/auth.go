package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"selection-assistant/pkg/response"
)

// Auth requires the configured client token. Without one configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.clientToken == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderClientToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.clientToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth: rejected request to %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
