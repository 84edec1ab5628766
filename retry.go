package huefy

import "time"

// RetryPolicy governs retry behavior for the HTTP transport. The kernel
// transport never retries; process failures indicate conditions retrying
// cannot fix.
type RetryPolicy struct {
	// Enabled turns retries on. When false every call is a single attempt.
	Enabled bool
	// MaxRetries is the maximum number of retry attempts after the
	// initial request.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows per retry.
	Multiplier float64
}

// DefaultRetryPolicy returns the retry policy used when none is configured:
// 3 retries with exponential backoff from 1s capped at 30s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Enabled:    true,
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}
