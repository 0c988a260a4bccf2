package redis

import (
	"context"
	"errors"
	"time"

	"github.com/phrazzld/taskq-api/internal/platform/logger"
	"github.com/phrazzld/taskq-api/internal/store"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultOpTimeout bounds a single queue operation when no timeout is configured.
const DefaultOpTimeout = 3 * time.Second

// QueueStore implements store.QueueStore on top of a Redis client.
type QueueStore struct {
	client    goredis.UniversalClient
	opTimeout time.Duration
}

// Ensure QueueStore implements store.QueueStore interface
var _ store.QueueStore = (*QueueStore)(nil)

// NewQueueStore creates a QueueStore using a client owned by the caller.
// opTimeout bounds each individual operation; zero selects DefaultOpTimeout.
func NewQueueStore(client goredis.UniversalClient, opTimeout time.Duration) *QueueStore {
	if opTimeout <= 0 {
		opTimeout = DefaultOpTimeout
	}
	return &QueueStore{
		client:    client,
		opTimeout: opTimeout,
	}
}

// PushTail implements store.QueueStore.PushTail with RPUSH.
func (s *QueueStore) PushTail(ctx context.Context, queue string, item []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	length, err := s.client.RPush(ctx, queue, item).Result()
	if err != nil {
		logger.FromContext(ctx).Error("failed to push to queue", "queue", queue, "error", err)
		return store.Unavailable("queue", "push", err)
	}

	logger.FromContext(ctx).Debug("pushed to queue", "queue", queue, "queue_len", length)
	return nil
}

// PopHead implements store.QueueStore.PopHead with LPOP. A missing key is an
// empty queue.
func (s *QueueStore) PopHead(ctx context.Context, queue string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	item, err := s.client.LPop(ctx, queue).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, store.ErrQueueEmpty
		}
		return nil, store.Unavailable("queue", "pop", err)
	}

	return item, nil
}

// PushHead implements store.QueueStore.PushHead with LPUSH.
func (s *QueueStore) PushHead(ctx context.Context, queue string, item []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.client.LPush(ctx, queue, item).Err(); err != nil {
		return store.Unavailable("queue", "requeue", err)
	}
	return nil
}

// Len implements store.QueueStore.Len with LLEN.
func (s *QueueStore) Len(ctx context.Context, queue string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	n, err := s.client.LLen(ctx, queue).Result()
	if err != nil {
		return 0, store.Unavailable("queue", "len", err)
	}
	return n, nil
}

// Ping checks connectivity to Redis.
func (s *QueueStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return store.Unavailable("queue", "ping", err)
	}
	return nil
}
