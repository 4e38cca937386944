// Package poll provides bounded fixed-interval polling for detached
// remote operations.
//
// [Until] evaluates a condition at a fixed interval for a bounded number
// of attempts. It is the waiting half of the "launch a background process,
// watch its log for a completion sentinel" pattern used for long-running
// installs on a remote VM that outlive a single command's timeout.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAttemptsExhausted is returned by Until when the condition never
// reported done within the configured attempt budget.
var ErrAttemptsExhausted = errors.New("poll: attempts exhausted")

// Condition is evaluated once per attempt. Returning done stops polling
// with success. Returning an error stops polling immediately.
type Condition func(ctx context.Context) (done bool, err error)

// ProgressFunc receives periodic progress notifications while polling.
type ProgressFunc func(attempt int, elapsed time.Duration)

// Config holds polling configuration.
type Config struct {
	Interval      time.Duration
	MaxAttempts   int
	ProgressEvery int
	Progress      ProgressFunc
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// Until waits Interval, evaluates the condition, and repeats up to
// MaxAttempts times. The full interval elapses before every evaluation,
// including the first, matching the behavior of watching a freshly
// launched background process. Context cancellation is respected during
// waits and returns ctx.Err().
//
// Returns nil when the condition reports done, the condition's error when
// it fails, and an error wrapping [ErrAttemptsExhausted] when the attempt
// budget runs out.
func Until(ctx context.Context, condition Condition, opts ...Option) error {
	cfg := &Config{
		Interval:      10 * time.Second,
		MaxAttempts:   60,
		ProgressEvery: 6,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("poll interrupted after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(cfg.Interval):
		}

		done, err := condition(ctx)
		if err != nil {
			return fmt.Errorf("poll condition failed on attempt %d: %w", attempt+1, err)
		}
		if done {
			return nil
		}

		if cfg.Progress != nil && attempt%cfg.ProgressEvery == 0 {
			cfg.Progress(attempt+1, time.Since(start).Round(time.Second))
		}
	}

	return fmt.Errorf("condition not met after %d attempts: %w", cfg.MaxAttempts, ErrAttemptsExhausted)
}

// WithInterval sets the wait between condition evaluations.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithMaxAttempts sets the attempt budget.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithProgress registers fn to be called every n attempts while waiting.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(c *Config) {
		if every > 0 {
			c.ProgressEvery = every
		}
		c.Progress = fn
	}
}
