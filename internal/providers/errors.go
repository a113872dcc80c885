package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrDecode marks an upstream body that could not be decoded.
	ErrDecode = errors.New("decode response")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError reports an unexpected upstream HTTP status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether repeating the request could succeed.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusRequestTimeout
}

// IsRetryable reports whether a fetch error is worth another attempt.
// Client-side status errors, undecodable bodies and context errors are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) || errors.Is(err, ErrDecode) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
