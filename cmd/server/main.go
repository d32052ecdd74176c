package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gamewatch/internal/config"
	"gamewatch/internal/logging"
	"gamewatch/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}).With(
		slog.String(logging.FieldService, "gamewatch"),
		slog.String(logging.FieldVersion, appVersion),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
