package credential

import "context"

// UseCase owns the process-wide API key.
type UseCase interface {
	// Load reads the persisted key once at startup, falling back to the configured seed.
	Load(ctx context.Context) error

	// Current returns a snapshot of the key; "" when none is configured.
	Current() string

	// Set persists key and makes it visible to the next Current call once the store confirms the write.
	Set(ctx context.Context, key string) error

	// Status reports whether a key is configured and where it came from.
	Status() Status
}
