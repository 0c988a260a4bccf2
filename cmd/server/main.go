// Package main implements the entry point for the taskq API server, which
// registers and authenticates users and accepts tasks onto their per-user
// queues.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskq-api/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the process: configuration, logging, the credential database, the
// queue store, and finally the HTTP server. It returns when SIGINT or SIGTERM
// has been received and the server has shut down.
func run() error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Redis connection established")

	app, err := newApplication(cfg, logger, db, redisClient)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
