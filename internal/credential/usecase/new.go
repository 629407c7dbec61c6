package usecase

import (
	"sync"
	"sync/atomic"

	"selection-assistant/internal/credential"
	"selection-assistant/internal/credential/repository"
	pkgLog "selection-assistant/pkg/log"
)

// DefaultStorageKey is the store key the API key lives under.
const DefaultStorageKey = "gemini_api_key"

type state struct {
	key    string
	source credential.Source
}

type implUseCase struct {
	l          pkgLog.Logger
	store      repository.Store
	storageKey string
	seed       string

	// mu serializes writers so the store and the in-memory value change in the same order.
	mu      sync.Mutex
	current atomic.Pointer[state]
}

// Ensure implUseCase implements credential.UseCase
var _ credential.UseCase = (*implUseCase)(nil)

// New creates a credential UseCase. seed is used when the store holds no key and is never persisted.
func New(l pkgLog.Logger, store repository.Store, storageKey string, seed string) *implUseCase {
	if storageKey == "" {
		storageKey = DefaultStorageKey
	}
	uc := &implUseCase{
		l:          l,
		store:      store,
		storageKey: storageKey,
		seed:       seed,
	}
	uc.current.Store(&state{source: credential.SourceNone})
	return uc
}
