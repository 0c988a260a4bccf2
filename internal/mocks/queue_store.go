package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskq-api/internal/store"
)

// MockQueueStore is an in-memory store.QueueStore. The Err fields make the
// matching operation fail without touching the queue.
type MockQueueStore struct {
	PushTailErr error
	PopHeadErr  error
	PushHeadErr error
	LenErr      error

	mu     sync.Mutex
	queues map[string][][]byte
}

var _ store.QueueStore = (*MockQueueStore)(nil)

// NewMockQueueStore returns an empty MockQueueStore.
func NewMockQueueStore() *MockQueueStore {
	return &MockQueueStore{queues: make(map[string][][]byte)}
}

// PushTail implements store.QueueStore
func (m *MockQueueStore) PushTail(_ context.Context, queue string, item []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PushTailErr != nil {
		return m.PushTailErr
	}
	m.queues[queue] = append(m.queues[queue], append([]byte(nil), item...))
	return nil
}

// PopHead implements store.QueueStore
func (m *MockQueueStore) PopHead(_ context.Context, queue string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PopHeadErr != nil {
		return nil, m.PopHeadErr
	}
	items := m.queues[queue]
	if len(items) == 0 {
		return nil, store.ErrQueueEmpty
	}
	m.queues[queue] = items[1:]
	return items[0], nil
}

// PushHead implements store.QueueStore
func (m *MockQueueStore) PushHead(_ context.Context, queue string, item []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PushHeadErr != nil {
		return m.PushHeadErr
	}
	m.queues[queue] = append([][]byte{append([]byte(nil), item...)}, m.queues[queue]...)
	return nil
}

// Len implements store.QueueStore
func (m *MockQueueStore) Len(_ context.Context, queue string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LenErr != nil {
		return 0, m.LenErr
	}
	return int64(len(m.queues[queue])), nil
}

// Items returns a copy of the queue contents, head first.
func (m *MockQueueStore) Items(queue string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.queues[queue]))
	for _, item := range m.queues[queue] {
		out = append(out, string(item))
	}
	return out
}
