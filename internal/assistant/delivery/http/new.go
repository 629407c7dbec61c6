package http

import (
	"github.com/gin-gonic/gin"

	"selection-assistant/internal/assistant"
	"selection-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
	Preview(c *gin.Context)
	Actions(c *gin.Context)
	GetCredential(c *gin.Context)
	SetCredential(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
