package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/platform/kafka"
	"github.com/phrazzld/taskq-api/internal/platform/logger"
	"github.com/phrazzld/taskq-api/internal/platform/redis"
	"github.com/phrazzld/taskq-api/internal/task"
)

// runWorker wires the queue store and the producer, then runs the worker loop
// until ctx is cancelled. Both connections are closed on return.
func runWorker(ctx context.Context, userID uuid.UUID) error {
	cfg, err := config.LoadWorker()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With("service", "taskq-worker")

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis connection", "error", err)
		}
	}()

	producer := kafka.NewProducer(cfg.Kafka)
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("Error closing Kafka producer", "error", err)
		}
	}()

	queues := redis.NewQueueStore(redisClient, time.Duration(cfg.Redis.OpTimeoutMS)*time.Millisecond)
	worker, err := task.NewWorker(task.ConfigFrom(userID, cfg.Worker, cfg.Kafka), queues, producer, log)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	log.Info("Worker starting",
		"user_id", userID.String(),
		"topic", producer.Topic(),
		"interval_ms", cfg.Worker.IntervalMS,
		"batch_size", cfg.Worker.BatchSize)

	if err := worker.Run(ctx); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	log.Info("Worker stopped", "user_id", userID.String())
	return nil
}
