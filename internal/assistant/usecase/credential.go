package usecase

import (
	"context"

	"selection-assistant/internal/credential"
	"selection-assistant/internal/router"
)

// SetCredential persists key; the next Submit observes it.
func (uc *implUseCase) SetCredential(ctx context.Context, key string) error {
	return uc.credentials.Set(ctx, key)
}

// CredentialStatus reports whether a key is configured.
func (uc *implUseCase) CredentialStatus(ctx context.Context) credential.Status {
	return uc.credentials.Status()
}

// Actions lists the menu entries.
func (uc *implUseCase) Actions(ctx context.Context) []router.ActionInfo {
	return uc.router.Actions()
}
