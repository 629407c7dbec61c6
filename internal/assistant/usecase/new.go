package usecase

import (
	"selection-assistant/internal/assistant"
	"selection-assistant/internal/credential"
	"selection-assistant/internal/invoker"
	"selection-assistant/internal/router"
	pkgLog "selection-assistant/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	router      router.Router
	invoker     invoker.Invoker
	credentials credential.UseCase
}

// Ensure implUseCase implements assistant.UseCase
var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	inv invoker.Invoker,
	credentials credential.UseCase,
) *implUseCase {
	return &implUseCase{
		l:           l,
		router:      r,
		invoker:     inv,
		credentials: credentials,
	}
}

// maxSnippetRunes bounds the endpoint error body echoed to the user.
const maxSnippetRunes = 200
