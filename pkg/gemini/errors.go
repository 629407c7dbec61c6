package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any request is made when the key is empty
	ErrMissingAPIKey = errors.New("gemini: api key is required")

	// ErrMalformedResponse indicates a 2xx body without generated text at candidates[0].content.parts[0].text
	ErrMalformedResponse = errors.New("gemini: malformed response")
)

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
