package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a ScheduleProvider with retry/backoff behavior and attempt metrics.
type retryingProvider struct {
	inner        ScheduleProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff:   exponentialBackOff(initial),
	}
}

func exponentialBackOff(initial time.Duration) func() backoff.BackOff {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = initial
		b.MaxInterval = maxBackoff
		b.MaxElapsedTime = 0
		b.Reset()
		return b
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	bo := r.newBackOff()
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		games, err := r.inner.FetchSchedule(ctx, q)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return games, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if !IsRetryable(err) || attempt == r.maxAttempts {
			break
		}

		delay := r.computeDelay(err, bo)
		if delay == backoff.Stop {
			break
		}
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "delay_ms", delay.Milliseconds(), "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed", "error", lastErr)
	return nil, lastErr
}

// computeDelay prefers an upstream Retry-After over the exponential schedule.
// A Retry-After longer than maxBackoff stops the retries so the caller fails fast.
func (r *retryingProvider) computeDelay(err error, bo backoff.BackOff) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		if rlErr.RetryAfter > maxBackoff {
			return backoff.Stop
		}
		return rlErr.RetryAfter
	}
	return bo.NextBackOff()
}
