package invoker

import "time"

const (
	DefaultMaxAttempts       = 3
	DefaultBaseDelay         = 1000 * time.Millisecond
	DefaultBackoffMultiplier = 2.0
	DefaultRetryMalformed    = true
)

// Log prefixes
const (
	LogPrefixInvoke = "internal.invoker.Invoke"
)
