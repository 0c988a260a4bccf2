package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/domain"
	"github.com/phrazzld/taskq-api/internal/store"
)

// TaskService accepts tasks on behalf of authenticated users.
type TaskService interface {
	// Enqueue serializes the task and appends it to the user's queue. When it
	// returns nil the task is durably queued and visible to the worker.
	Enqueue(ctx context.Context, userID uuid.UUID, task json.RawMessage) error
}

// TaskServiceImpl implements TaskService on top of a store.QueueStore.
type TaskServiceImpl struct {
	queues store.QueueStore
	logger *slog.Logger
}

var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(queues store.QueueStore, logger *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		queues: queues,
		logger: logger.With("component", "task_service"),
	}
}

// Enqueue validates the task and pushes its compact serialization onto the
// tail of queue_<userID> with a single append.
func (s *TaskServiceImpl) Enqueue(ctx context.Context, userID uuid.UUID, raw json.RawMessage) error {
	if userID == uuid.Nil {
		return domain.ErrEmptyUserID
	}

	task, err := domain.NewTask(raw)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	queue := store.QueueName(userID)
	if err := s.queues.PushTail(ctx, queue, task.Bytes()); err != nil {
		s.logger.Error("failed to enqueue task",
			"error", err,
			"user_id", userID,
			"queue", queue)
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	s.logger.Debug("task enqueued",
		"user_id", userID,
		"queue", queue,
		"size_bytes", len(task.Bytes()))

	return nil
}
