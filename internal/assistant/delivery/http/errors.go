package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"selection-assistant/internal/model"
	"selection-assistant/pkg/response"
)

var (
	errWrongBody            = errors.New("wrong body")
	errTextTooLarge         = errors.New("selected text is too large")
	errBodyTooLarge         = errors.New("request body is too large")
	errUnsupportedMediaType = errors.New("content type must be application/json")
)

// failureStatus maps a failure kind to the HTTP status returned to the extension.
func failureStatus(kind model.FailureKind) int {
	switch kind {
	case model.FailureMissingCredential:
		return http.StatusPreconditionFailed
	case model.FailureEmptyParameter, model.FailureEmptyText, model.FailureUnknownAction:
		return http.StatusBadRequest
	case model.FailureTransport, model.FailureHTTP, model.FailureMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requestError writes the response for a request that failed binding or validation.
func requestError(c *gin.Context, err error) {
	switch err {
	case errUnsupportedMediaType:
		response.ErrorStatus(c, http.StatusUnsupportedMediaType, http.StatusUnsupportedMediaType, err.Error(), nil)
	case errBodyTooLarge:
		response.ErrorStatus(c, http.StatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, err.Error(), nil)
	default:
		response.Error(c, err, nil)
	}
}
