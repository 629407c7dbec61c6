package credential

import "errors"

var (
	ErrStoreRead  = errors.New("failed to read credential store")
	ErrStoreWrite = errors.New("failed to write credential store")
)
