package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-standings/internal/app"
	"github.com/preston-bernstein/nba-standings/internal/config"
	"github.com/preston-bernstein/nba-standings/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	envErr := config.LoadEnvFile()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nba-standings",
		Version: appVersion,
	})
	if envErr != nil {
		logging.Warn(logger, "env file not loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg, logger, os.Stdout).Run(ctx); err != nil {
		logging.Error(logger, "season run failed", err)
		return 1
	}
	return 0
}
