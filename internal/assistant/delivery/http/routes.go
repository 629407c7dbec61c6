package http

import (
	"github.com/gin-gonic/gin"

	"selection-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Submit)
		tasks.POST("/preview", mw.Auth(), h.Preview)
	}

	rg.GET("/actions", mw.Auth(), h.Actions)

	cred := rg.Group("/credential")
	{
		cred.GET("", mw.Auth(), h.GetCredential)
		cred.PUT("", mw.Auth(), h.SetCredential)
	}
}
