package mocks

import (
	"context"
	"sync"
)

// PublishedMessage is one message accepted by MockPublisher.
type PublishedMessage struct {
	Key   string
	Value string
}

// MockPublisher records published messages in memory.
type MockPublisher struct {
	// PublishFn, when set, decides the result of each Publish call. A message
	// is recorded only if it returns nil.
	PublishFn func(ctx context.Context, key, value []byte) error

	// Err makes every Publish call fail when PublishFn is nil.
	Err error

	mu       sync.Mutex
	messages []PublishedMessage
	attempts int
}

// Publish records the message unless a failure is configured.
func (m *MockPublisher) Publish(ctx context.Context, key, value []byte) error {
	m.mu.Lock()
	m.attempts++
	m.mu.Unlock()

	err := m.Err
	if m.PublishFn != nil {
		err = m.PublishFn(ctx, key, value)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, PublishedMessage{Key: string(key), Value: string(value)})
	return nil
}

// Messages returns the recorded messages in publish order.
func (m *MockPublisher) Messages() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PublishedMessage(nil), m.messages...)
}

// Attempts returns the number of Publish calls, failed ones included.
func (m *MockPublisher) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}
