package repository

import "context"

// Store is the key-value persistence behind the credential.
// Set must not return before the value is durable.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
