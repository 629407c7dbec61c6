package usecase

import (
	"context"
	"fmt"
	"strings"

	"selection-assistant/internal/credential"
)

// Load reads the persisted key. A missing key falls back to the seed.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	key, ok, err := uc.store.Get(ctx, uc.storageKey)
	if err != nil {
		return fmt.Errorf("%w: %v", credential.ErrStoreRead, err)
	}

	switch {
	case ok:
		uc.current.Store(&state{key: key, source: sourceFor(key, credential.SourceStore)})
		uc.l.Infof(ctx, "internal.credential.Load: loaded key from store (configured=%t)", key != "")
	case uc.seed != "":
		uc.current.Store(&state{key: uc.seed, source: credential.SourceConfig})
		uc.l.Infof(ctx, "internal.credential.Load: no stored key, using configured seed")
	default:
		uc.current.Store(&state{source: credential.SourceNone})
		uc.l.Warnf(ctx, "internal.credential.Load: no API key configured")
	}
	return nil
}

// Current returns the key snapshot; in-flight callers keep the value they already read.
func (uc *implUseCase) Current() string {
	return uc.current.Load().key
}

// Set persists key, then publishes it. An empty key clears the credential.
func (uc *implUseCase) Set(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Set(ctx, uc.storageKey, key); err != nil {
		uc.l.Errorf(ctx, "internal.credential.Set: %v", err)
		return fmt.Errorf("%w: %v", credential.ErrStoreWrite, err)
	}

	uc.current.Store(&state{key: key, source: sourceFor(key, credential.SourceStore)})
	uc.l.Infof(ctx, "internal.credential.Set: key updated (configured=%t)", key != "")
	return nil
}

// Status reports whether a key is configured.
func (uc *implUseCase) Status() credential.Status {
	s := uc.current.Load()
	return credential.Status{Configured: s.key != "", Source: s.source}
}

func sourceFor(key string, src credential.Source) credential.Source {
	if key == "" {
		return credential.SourceNone
	}
	return src
}
