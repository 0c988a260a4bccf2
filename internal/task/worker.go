package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/domain"
	"github.com/phrazzld/taskq-api/internal/store"
)

// Publisher delivers a serialized task to the downstream log.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Config holds configuration for a Worker.
type Config struct {
	// UserID owns the queue the worker drains.
	UserID uuid.UUID

	// Interval between ticks. Defaults to one second.
	Interval time.Duration

	// BatchSize is the maximum number of items popped per tick. Defaults to 1.
	BatchSize int

	// Topic names the downstream topic in logs. Delivery itself is the
	// Publisher's concern.
	Topic string

	// RequeueOnFailure pushes an item that could not be forwarded back to the
	// head of the queue instead of dropping it. The tick ends after a requeue
	// so the item is retried on the next tick, not in a tight loop.
	RequeueOnFailure bool
}

// DefaultTopic is the downstream topic tasks are forwarded to.
const DefaultTopic = "request_logs"

// DefaultConfig returns a Config for userID with the default pacing.
func DefaultConfig(userID uuid.UUID) Config {
	return Config{
		UserID:    userID,
		Interval:  time.Second,
		BatchSize: 1,
		Topic:     DefaultTopic,
	}
}

// ConfigFrom builds a worker Config for userID from application settings.
func ConfigFrom(userID uuid.UUID, worker config.WorkerConfig, kafka config.KafkaConfig) Config {
	cfg := DefaultConfig(userID)
	if worker.IntervalMS > 0 {
		cfg.Interval = time.Duration(worker.IntervalMS) * time.Millisecond
	}
	if worker.BatchSize > 0 {
		cfg.BatchSize = worker.BatchSize
	}
	if kafka.Topic != "" {
		cfg.Topic = kafka.Topic
	}
	cfg.RequeueOnFailure = worker.RequeueOnFailure
	return cfg
}

// TickResult summarises one tick.
type TickResult struct {
	Popped    int
	Forwarded int
	Dropped   int
	Requeued  int

	// Err is the pop or requeue failure that ended the tick early, if any.
	Err error
}

// Worker forwards the tasks of a single user's queue downstream.
type Worker struct {
	config    Config
	queue     string
	queues    store.QueueStore
	publisher Publisher
	logger    *slog.Logger
}

// NewWorker creates a Worker. Zero-valued Interval, BatchSize and Topic fall
// back to DefaultConfig.
func NewWorker(cfg Config, queues store.QueueStore, publisher Publisher, logger *slog.Logger) (*Worker, error) {
	if cfg.UserID == uuid.Nil {
		return nil, domain.ErrEmptyUserID
	}
	if queues == nil || publisher == nil {
		return nil, errors.New("worker requires a queue store and a publisher")
	}

	defaults := DefaultConfig(cfg.UserID)
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.Topic == "" {
		cfg.Topic = defaults.Topic
	}

	return &Worker{
		config:    cfg,
		queue:     store.QueueName(cfg.UserID),
		queues:    queues,
		publisher: publisher,
		logger: logger.With(
			"component", "worker",
			"user_id", cfg.UserID,
			"queue", store.QueueName(cfg.UserID),
			"topic", cfg.Topic,
		),
	}, nil
}

// Run ticks every Interval until ctx is cancelled. A failing item or an
// unavailable store never stops the loop; the failure is logged and the next
// tick tries again. Run returns nil once ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started",
		"interval", w.config.Interval,
		"batch_size", w.config.BatchSize,
		"requeue_on_failure", w.config.RequeueOnFailure)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopped")
			return nil
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick performs one polling cycle: up to BatchSize pops, each followed by a
// forward. An empty queue ends the tick.
func (w *Worker) Tick(ctx context.Context) TickResult {
	var result TickResult
	defer func() { recordTick(result) }()

	for i := 0; i < w.config.BatchSize; i++ {
		if ctx.Err() != nil {
			return result
		}

		item, err := w.queues.PopHead(ctx, w.queue)
		if errors.Is(err, store.ErrQueueEmpty) {
			return result
		}
		if err != nil {
			w.logger.Error("failed to pop from queue", "error", err)
			result.Err = err
			return result
		}
		result.Popped++

		if !w.handle(ctx, item, &result) {
			return result
		}
	}
	return result
}

// handle validates and forwards one popped item. It reports whether the tick
// may continue with the next item.
func (w *Worker) handle(ctx context.Context, item []byte, result *TickResult) bool {
	task, err := domain.ParseTask(item)
	if err != nil {
		w.logger.Error("dropping malformed queue item",
			"error", err,
			"size_bytes", len(item))
		result.Dropped++
		return true
	}

	// A popped item is finished even when the worker is stopping; the
	// publisher's write timeout bounds the call.
	start := time.Now()
	err = w.publisher.Publish(context.WithoutCancel(ctx), []byte(w.config.UserID.String()), task.Bytes())
	workerForwardDuration.Observe(time.Since(start).Seconds())
	if err == nil {
		w.logger.Debug("task forwarded", "size_bytes", len(task.Bytes()))
		result.Forwarded++
		return true
	}

	err = fmt.Errorf("%w: %w", ErrForward, err)
	if !w.config.RequeueOnFailure {
		w.logger.Error("task lost after forward failure", "error", err)
		result.Dropped++
		return true
	}

	// The pop already happened; put the item back where it was.
	if pushErr := w.queues.PushHead(context.WithoutCancel(ctx), w.queue, item); pushErr != nil {
		w.logger.Error("task lost: forward and requeue both failed",
			"error", err,
			"requeue_error", pushErr)
		result.Dropped++
		result.Err = pushErr
		return false
	}

	w.logger.Warn("task requeued after forward failure", "error", err)
	result.Requeued++
	return false
}
