package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "selection-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain builds the assistant handler and registers its routes:
// /api/v1/tasks, /api/v1/tasks/preview, /api/v1/actions and /api/v1/credential.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
