package server

import (
	"log/slog"

	"github.com/preston-bernstein/msom-squad-service/internal/config"
	"github.com/preston-bernstein/msom-squad-service/internal/metrics"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (retry + metrics).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScheduleProvider) providers.ScheduleProvider {
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Retry.MaxAttempts, cfg.Retry.Backoff)
}
