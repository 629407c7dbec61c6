package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"selection-assistant/pkg/log"
)

const corsMaxAge = 12 * time.Hour

// CORS admits the browser extension's origin and answers preflight requests.
// Requests from other origins are rejected with 403.
func (m Middleware) CORS() gin.HandlerFunc {
	return m.cors
}

// newCORS builds the gin-contrib/cors handler. Entries may be exact origins,
// "*" or a single-wildcard pattern such as "chrome-extension://*".
func newCORS(l log.Logger, allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:           []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Type", HeaderRequestID, HeaderClientToken},
		ExposeHeaders:          []string{HeaderRequestID},
		AllowWildcard:          true,
		AllowBrowserExtensions: true,
		MaxAge:                 corsMaxAge,
	}

	ctx := context.Background()
	for _, origin := range allowedOrigins {
		switch {
		case origin == "*":
			cfg.AllowAllOrigins = true
		case strings.Count(origin, "*") > 1:
			l.Warnf(ctx, "internal.middleware.newCORS: ignoring origin %q: only one wildcard is allowed", origin)
		default:
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if cfg.AllowAllOrigins {
		cfg.AllowOrigins = nil
	}

	if len(cfg.AllowOrigins) == 0 && !cfg.AllowAllOrigins {
		cfg.AllowOriginFunc = denyOrigin
	}
	if err := cfg.Validate(); err != nil {
		l.Warnf(ctx, "internal.middleware.newCORS: invalid origins %v, denying cross-origin requests: %v", allowedOrigins, err)
		cfg.AllowAllOrigins = false
		cfg.AllowOrigins = nil
		cfg.AllowOriginFunc = denyOrigin
	}

	return cors.New(cfg)
}

func denyOrigin(string) bool { return false }
