package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"selection-assistant/pkg/log"
)

// RequestID propagates X-Request-ID or generates one, and stores it in the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
