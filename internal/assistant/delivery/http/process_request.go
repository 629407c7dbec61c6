package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maxBodyBytes leaves room for the JSON envelope around a maximal selection.
const maxBodyBytes = maxTextBytes + 4<<10

// processTaskReq binds and validates the task request body.
func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := h.bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.assistant.delivery.http.processTaskReq: %v", err)
		return req, err
	}
	return req, req.validate()
}

// processCredentialReq binds the credential request body.
func (h *handler) processCredentialReq(c *gin.Context) (credentialReq, error) {
	var req credentialReq
	if err := h.bindJSON(c, &req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.assistant.delivery.http.processCredentialReq: %v", err)
		return req, err
	}
	return req, nil
}

// bindJSON accepts only application/json bodies up to maxBodyBytes.
// Other content types are what a page can send cross-origin without a preflight.
func (h *handler) bindJSON(c *gin.Context, obj any) error {
	if c.ContentType() != binding.MIMEJSON {
		return errUnsupportedMediaType
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return errWrongBody
	}
	return nil
}
