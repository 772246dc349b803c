// Package resilience provides small, stateless helpers for retrying
// transient failures, adapted from the retry/backoff shape
// fanonxr-Lexiq-AI's voice-gateway uses to survive flaky upstream network
// calls. klattd only has one: the websocket write back to its caller.
package resilience

import (
	"strings"
	"time"
)

// RetryConfig controls how many attempts Retry makes and how long it waits
// between them.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	BackoffMultiplier float64
}

// DefaultRetryConfig is tuned for a single websocket write: a couple of
// quick retries, not the multi-second backoff an outbound API call would
// warrant, since the caller on the other end of the connection is still
// waiting on PCM.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    2 * time.Millisecond,
		BackoffMultiplier: 2,
	}
}

// RetryableFunc is a function Retry may call more than once.
type RetryableFunc func() error

// IsRetryableError classifies whether an error is worth retrying.
type IsRetryableError func(error) bool

// Retry calls fn until it succeeds, a non-retryable error is returned, or
// cfg.MaxAttempts is exhausted, whichever comes first.
func Retry(fn RetryableFunc, cfg RetryConfig, isRetryable IsRetryableError) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	backoff := cfg.InitialBackoff
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryable != nil && !isRetryable(err) {
			return err
		}
		if attempt < cfg.MaxAttempts-1 && backoff > 0 {
			time.Sleep(backoff)
			backoff = time.Duration(float64(backoff) * cfg.BackoffMultiplier)
		}
	}
	return lastErr
}

// IsRetryableNetworkError reports whether err looks like a transient
// network condition (timeout, reset, temporary unavailability) rather than
// a definitive "the peer is gone" failure.
func IsRetryableNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, s := range []string{
		"i/o timeout",
		"timeout",
		"connection reset",
		"temporarily unavailable",
		"resource temporarily unavailable",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
