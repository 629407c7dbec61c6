package invoker

import (
	"errors"
	"fmt"

	"selection-assistant/internal/model"
)

var (
	// ErrMissingCredential is returned without contacting the endpoint when no API key is configured
	ErrMissingCredential = errors.New("api key is not configured")

	ErrInvalidConfig = errors.New("invalid invoker config")
)

// Error is the classified outcome of a failed invocation.
type Error struct {
	Kind       model.FailureKind
	StatusCode int
	Attempts   int
	Err        error
}

func (e *Error) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("%s after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
