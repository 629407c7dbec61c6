package assistant

import (
	"context"

	"selection-assistant/internal/credential"
	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
)

// UseCase is the boundary the UI layer talks to.
type UseCase interface {
	// Submit runs one action on selected text. Failures are reported in the result, never as an error.
	Submit(ctx context.Context, req model.TaskRequest) model.TaskResult

	// Preview resolves req into the query that Submit would send, without calling the model.
	Preview(ctx context.Context, req model.TaskRequest) (model.ModelQuery, *model.Failure)

	// SetCredential persists and activates a new API key.
	SetCredential(ctx context.Context, key string) error

	// CredentialStatus reports whether an API key is configured.
	CredentialStatus(ctx context.Context) credential.Status

	// Actions lists the menu entries.
	Actions(ctx context.Context) []router.ActionInfo
}
