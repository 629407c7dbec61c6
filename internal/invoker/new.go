package invoker

import (
	"context"
	"fmt"
	"math"
	"time"

	"selection-assistant/internal/model"
	"selection-assistant/pkg/gemini"
	"selection-assistant/pkg/log"
)

// Invoker sends a resolved query to the model endpoint.
type Invoker interface {
	Invoke(ctx context.Context, q model.ModelQuery) (string, error)
}

// CredentialSource returns the API key to use for the next invocation.
type CredentialSource interface {
	Current() string
}

// Sleeper waits between attempts. Sleep returns early with ctx.Err() when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Config is the retry policy.
type Config struct {
	MaxAttempts       int
	BaseDelay         time.Duration
	BackoffMultiplier float64

	// RetryMalformed keeps retrying 2xx responses without generated text.
	// Such responses are usually an API contract mismatch rather than a transient fault.
	RetryMalformed bool
}

// DefaultConfig returns 3 attempts with 1s, 2s delays.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       DefaultMaxAttempts,
		BaseDelay:         DefaultBaseDelay,
		BackoffMultiplier: DefaultBackoffMultiplier,
		RetryMalformed:    DefaultRetryMalformed,
	}
}

// Validate checks MaxAttempts >= 1, BaseDelay >= 0, BackoffMultiplier >= 1.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.BaseDelay < 0 {
		return fmt.Errorf("%w: base delay must not be negative, got %s", ErrInvalidConfig, c.BaseDelay)
	}
	if c.BackoffMultiplier < 1 {
		return fmt.Errorf("%w: backoff multiplier must be at least 1, got %g", ErrInvalidConfig, c.BackoffMultiplier)
	}
	return nil
}

// Delay returns the wait before the given 1-based attempt: zero for the first,
// then BaseDelay * BackoffMultiplier^(attempt-2).
func (c Config) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return time.Duration(float64(c.BaseDelay) * math.Pow(c.BackoffMultiplier, float64(attempt-2)))
}

type implInvoker struct {
	llm         gemini.IGemini
	credentials CredentialSource
	config      Config
	sleeper     Sleeper
	l           log.Logger
}

// Option customizes the invoker.
type Option func(*implInvoker)

// WithSleeper replaces the timer-based sleeper.
func WithSleeper(s Sleeper) Option {
	return func(i *implInvoker) {
		i.sleeper = s
	}
}

// New creates a new Invoker
func New(llm gemini.IGemini, credentials CredentialSource, cfg Config, l log.Logger, opts ...Option) (Invoker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	i := &implInvoker{
		llm:         llm,
		credentials: credentials,
		config:      cfg,
		sleeper:     timerSleeper{},
		l:           l,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
