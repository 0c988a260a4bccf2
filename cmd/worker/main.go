// Package main implements the per-user worker process. It drains one user's
// task queue and forwards each task to the downstream log topic until it
// receives SIGINT or SIGTERM.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(runWorker).ExecuteContext(ctx); err != nil {
		slog.Error("worker exited with error", "error", err)
		os.Exit(1)
	}
}
