package store

import (
	"context"

	"github.com/google/uuid"
)

// QueuePrefix prefixes every per-user queue key.
const QueuePrefix = "queue_"

// QueueName returns the key of the queue owned by userID.
func QueueName(userID uuid.UUID) string {
	return QueuePrefix + userID.String()
}

// QueueStore is a durable FIFO list keyed by queue name. Pushes and pops on the
// same queue are atomic with respect to each other. A queue that was never
// pushed to behaves exactly like an empty one.
type QueueStore interface {
	// PushTail appends item to the end of the queue. The push is durable once
	// it returns nil.
	PushTail(ctx context.Context, queue string, item []byte) error

	// PopHead removes and returns the oldest item.
	// Returns ErrQueueEmpty when there is nothing to pop.
	PopHead(ctx context.Context, queue string) ([]byte, error)

	// PushHead puts item back in front of the queue so it is popped next.
	PushHead(ctx context.Context, queue string, item []byte) error

	// Len returns the number of items in the queue.
	Len(ctx context.Context, queue string) (int64, error)
}
