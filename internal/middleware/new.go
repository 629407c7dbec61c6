package middleware

import (
	"github.com/gin-gonic/gin"

	"selection-assistant/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	clientToken    string
	cors           gin.HandlerFunc
}

// Config holds middleware settings.
type Config struct {
	// AllowedOrigins lists exact origins, "*", or single-wildcard patterns (e.g. "chrome-extension://*").
	AllowedOrigins []string

	// ClientToken, when set, must be sent in the X-Client-Token header on API routes.
	ClientToken string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
		clientToken:    cfg.ClientToken,
		cors:           newCORS(l, cfg.AllowedOrigins),
	}
}
