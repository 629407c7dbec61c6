package http

import (
	"github.com/gin-gonic/gin"

	"selection-assistant/pkg/response"
)

// Submit godoc
// @Summary     Run an action on selected text
// @Description Resolves the action, calls the model with bounded retry and returns the result as text and HTML.
// @Description A request with "cancelled": true (the user dismissed the parameter prompt) returns 204 and runs nothing.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task"
// @Success     200 {object} taskResp
// @Success     204 "Cancelled by the user"
// @Failure     400 {object} response.Resp "Empty parameter, empty text or unknown action"
// @Failure     412 {object} response.Resp "No API key configured"
// @Failure     502 {object} response.Resp "Model service failed"
// @Router      /api/v1/tasks [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		requestError(c, err)
		return
	}

	if req.Cancelled {
		h.l.Debugf(ctx, "internal.assistant.delivery.http.Submit: action=%s cancelled by user", req.Action)
		response.NoContent(c)
		return
	}

	in := req.toInput()
	result := h.uc.Submit(ctx, in)
	if !result.Succeeded() {
		status := failureStatus(result.Failure.Kind)
		response.ErrorStatus(c, status, status, result.Failure.Message, newFailureData(result.Failure))
		return
	}

	response.OK(c, h.newTaskResp(in.Action, result))
}

// Preview godoc
// @Summary     Preview the model query
// @Description Returns the instruction and sanitized content Submit would send, without calling the model.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "No API key configured"
// @Router      /api/v1/tasks/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		requestError(c, err)
		return
	}

	q, failure := h.uc.Preview(ctx, req.toInput())
	if failure != nil {
		status := failureStatus(failure.Kind)
		response.ErrorStatus(c, status, status, failure.Message, newFailureData(failure))
		return
	}

	response.OK(c, h.newPreviewResp(q))
}

// Actions godoc
// @Summary     List actions
// @Description Returns the selection menu entries in display order.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} actionsResp
// @Router      /api/v1/actions [GET]
func (h *handler) Actions(c *gin.Context) {
	response.OK(c, h.newActionsResp(h.uc.Actions(c.Request.Context())))
}

// GetCredential godoc
// @Summary     Credential status
// @Description Reports whether an API key is configured. The key itself is never returned.
// @Tags        Credential
// @Produce     json
// @Success     200 {object} credentialResp
// @Router      /api/v1/credential [GET]
func (h *handler) GetCredential(c *gin.Context) {
	response.OK(c, h.newCredentialResp(h.uc.CredentialStatus(c.Request.Context())))
}

// SetCredential godoc
// @Summary     Save the API key
// @Description Persists the Gemini API key; the next task uses it. An empty key clears it.
// @Tags        Credential
// @Accept      json
// @Produce     json
// @Param       body body credentialReq true "API key"
// @Success     200 {object} credentialResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/credential [PUT]
func (h *handler) SetCredential(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialReq(c)
	if err != nil {
		requestError(c, err)
		return
	}

	if err := h.uc.SetCredential(ctx, req.APIKey); err != nil {
		h.l.Errorf(ctx, "uc.SetCredential: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCredentialResp(h.uc.CredentialStatus(ctx)))
}
