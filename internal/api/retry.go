package api

import (
	"context"
	"math"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
// Retries apply to transport-level failures and 5xx responses; 4xx
// responses fail immediately.
type RetryConfig struct {
	// Enabled turns retries on. When false every call is a single attempt.
	Enabled bool
	// MaxRetries is the maximum number of retry attempts.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay is the maximum delay between retry attempts.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay increases per retry.
	Multiplier float64
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Enabled:    true,
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}

// ShouldRetry reports whether another attempt may follow the given
// zero-based attempt number.
func (r RetryConfig) ShouldRetry(attempt int) bool {
	return r.Enabled && attempt < r.MaxRetries
}

// Delay returns the backoff delay before the given retry (1-based):
// min(BaseDelay * Multiplier^(retry-1), MaxDelay).
func (r RetryConfig) Delay(retry int) time.Duration {
	if retry < 1 {
		retry = 1
	}
	multiplier := r.Multiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}
	delay := float64(r.BaseDelay) * math.Pow(multiplier, float64(retry-1))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}
	return time.Duration(delay)
}

// Wait blocks for the backoff delay before the given retry, honoring
// context cancellation.
func (r RetryConfig) Wait(ctx context.Context, retry int) error {
	timer := time.NewTimer(r.Delay(retry))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
