package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("connection reset")
var errDomain = errors.New("seat already booked")

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func transientOnly(err error) bool {
	return errors.Is(err, errTransient)
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), transientOnly, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), transientOnly, func(ctx context.Context) error {
		calls++
		return errDomain
	})

	assert.ErrorIs(t, err, errDomain)
	assert.Equal(t, 1, calls, "domain failures must not be retried")
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), transientOnly, func(ctx context.Context) error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestDo_ContextCancelStopsSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Do(ctx, Config{
		MaxAttempts:  5,
		InitialDelay: time.Hour, // never elapses
		Multiplier:   2.0,
	}, transientOnly, func(ctx context.Context) error {
		calls++
		cancel()
		return errTransient
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDelayFor_CapsAtMaxDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     300 * time.Millisecond,
		Multiplier:   2.0,
	}

	assert.Equal(t, 100*time.Millisecond, delayFor(cfg, 1))
	assert.Equal(t, 200*time.Millisecond, delayFor(cfg, 2))
	assert.Equal(t, 300*time.Millisecond, delayFor(cfg, 3))
	assert.Equal(t, 300*time.Millisecond, delayFor(cfg, 10))
}
