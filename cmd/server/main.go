package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/msom-squad-service/internal/config"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
	"github.com/preston-bernstein/msom-squad-service/internal/server"
)

const (
	appName    = "msom-squad-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotenvErr := config.LoadDotEnv()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to read .env file", "error", dotenvErr)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
