package invoker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"selection-assistant/internal/invoker"
	"selection-assistant/pkg/log"
)

func TestConfig_Delay(t *testing.T) {
	cfg := invoker.DefaultConfig()

	assert.Equal(t, time.Duration(0), cfg.Delay(1))
	assert.Equal(t, 1000*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, 2000*time.Millisecond, cfg.Delay(3))
	assert.Equal(t, 4000*time.Millisecond, cfg.Delay(4))

	flat := invoker.Config{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond, BackoffMultiplier: 1}
	assert.Equal(t, 500*time.Millisecond, flat.Delay(3))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     invoker.Config
		wantErr bool
	}{
		{"defaults", invoker.DefaultConfig(), false},
		{"zero delay", invoker.Config{MaxAttempts: 1, BaseDelay: 0, BackoffMultiplier: 1}, false},
		{"zero attempts", invoker.Config{MaxAttempts: 0, BackoffMultiplier: 2}, true},
		{"negative delay", invoker.Config{MaxAttempts: 3, BaseDelay: -time.Second, BackoffMultiplier: 2}, true},
		{"multiplier below one", invoker.Config{MaxAttempts: 3, BaseDelay: time.Second, BackoffMultiplier: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, invoker.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := invoker.New(nil, staticCredential("k"), invoker.Config{}, log.NewNop())
	assert.ErrorIs(t, err, invoker.ErrInvalidConfig)
}
