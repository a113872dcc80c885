package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/msom-squad-service/internal/app/page"
	"github.com/preston-bernstein/msom-squad-service/internal/config"
	httpserver "github.com/preston-bernstein/msom-squad-service/internal/http"
	"github.com/preston-bernstein/msom-squad-service/internal/http/handlers"
	"github.com/preston-bernstein/msom-squad-service/internal/http/middleware"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
	"github.com/preston-bernstein/msom-squad-service/internal/metrics"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	pageService   *page.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider wrapped in retries.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}
	pageSvc := page.NewService(provider, pageOptions(cfg.Season), logger, recorder)
	httpSrv := buildHTTPServer(cfg, pageSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		pageService:   pageSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func pageOptions(season config.Season) page.Options {
	return page.Options{
		Title:    season.PageTitle(),
		HomeTeam: season.HomeTeam,
		Query:    season.Query(),
		Roster:   season.SquadRoster(),
		Winners:  season.SquadWinners(),
	}
}

func buildHTTPServer(cfg config.Config, pageSvc *page.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(pageSvc, logger)
	router := httpserver.NewRouter(handler, cfg.LogoDir)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
