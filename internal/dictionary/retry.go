package dictionary

import (
	"context"
	"errors"
	"strings"
	"time"
)

// RetryPolicy bounds how transient backend failures are retried. The policy
// applies per backend call; non-transient rejections are never retried.
type RetryPolicy struct {
	MaxAttempts    uint
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryPolicy mirrors the update pipeline defaults: 3 attempts with
// exponential backoff between 1s and 10s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: time.Second,
		MaxBackoff:     10 * time.Second,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "connection reset") || strings.Contains(errStr, "Client.Timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "status code: 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "status code: 429") {
		return true
	}

	return false
}
