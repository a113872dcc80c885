package server

import (
	"log/slog"

	"github.com/preston-bernstein/msom-squad-service/internal/config"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
	"github.com/preston-bernstein/msom-squad-service/internal/providers/cfbd"
	"github.com/preston-bernstein/msom-squad-service/internal/providers/fixture"
)

const (
	providerCFBD    = "cfbd"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case providerCFBD, "":
		if cfg.CFBD.Token == "" {
			logging.Warn(logger, "CFB_DATA_TOKEN is empty, upstream requests will be unauthenticated",
				slog.String(logging.FieldProvider, providerCFBD))
		}
		return cfbd.NewClient(cfbd.Config{
			BaseURL: cfg.CFBD.BaseURL,
			Token:   cfg.CFBD.Token,
			Timeout: cfg.CFBD.Timeout,
		})
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
