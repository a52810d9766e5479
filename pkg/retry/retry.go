package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Config controls the backoff schedule
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// Jitter adds up to this fraction of the computed delay, so
	// contending retriers do not wake in lockstep.
	Jitter float64
}

// DefaultConfig returns a schedule suitable for transient database
// failures: 3 attempts, 100ms initial delay doubling up to 2s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
	}
}

// Retryable decides whether an error is worth another attempt. Domain
// outcomes (seat taken, order missing) must return false: retrying
// them cannot change the result and would hammer the contended rows.
type Retryable func(err error) bool

// Always treats every error as retryable. Use it for calls that can
// only fail on infrastructure, such as broker publishes.
func Always(error) bool { return true }

// Do runs fn up to cfg.MaxAttempts times, sleeping with exponential
// backoff between attempts. Only errors the retryable predicate
// accepts are retried; the first non-retryable error (or success) is
// returned immediately. Context cancellation stops the schedule.
func Do(ctx context.Context, cfg Config, retryable Retryable, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delayFor(cfg, attempt)):
		}
	}

	return lastErr
}

// delayFor computes the backoff delay before the next attempt after
// the given 1-based attempt number
func delayFor(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if max := float64(cfg.MaxDelay); cfg.MaxDelay > 0 && delay > max {
		delay = max
	}
	if cfg.Jitter > 0 {
		delay += delay * cfg.Jitter * rand.Float64()
	}
	return time.Duration(delay)
}
