package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/domain"
	"github.com/phrazzld/taskq-api/internal/mocks"
	"github.com/phrazzld/taskq-api/internal/service"
	"github.com/phrazzld/taskq-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BCryptCost:           4,
	}
}

func TestTaskService_Enqueue(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	queue := store.QueueName(userID)

	tests := []struct {
		name      string
		userID    uuid.UUID
		task      string
		pushErr   error
		wantErr   error
		wantQueue []string
	}{
		{name: "string task", userID: userID, task: `"x"`, wantQueue: []string{`"x"`}},
		{
			name:      "object task is compacted",
			userID:    userID,
			task:      "{ \"a\" : 1,\n \"b\": [1, 2] }",
			wantQueue: []string{`{"a":1,"b":[1,2]}`},
		},
		{name: "number task", userID: userID, task: `42`, wantQueue: []string{`42`}},
		{name: "null task", userID: userID, task: `null`, wantQueue: []string{`null`}},
		{name: "empty task", userID: userID, task: ``, wantErr: domain.ErrValidation},
		{name: "invalid json", userID: userID, task: `{"a":`, wantErr: domain.ErrInvalidFormat},
		{name: "missing user", userID: uuid.Nil, task: `"x"`, wantErr: domain.ErrValidation},
		{
			name:    "store unavailable",
			userID:  userID,
			task:    `"x"`,
			pushErr: store.Unavailable("queue", "push", errors.New("dial tcp: connection refused")),
			wantErr: store.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			queues := mocks.NewMockQueueStore()
			queues.PushTailErr = tt.pushErr
			svc := service.NewTaskService(queues, discardLogger())

			err := svc.Enqueue(context.Background(), tt.userID, json.RawMessage(tt.task))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, queues.Items(queue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQueue, queues.Items(queue))
		})
	}
}

func TestTaskService_EnqueuePreservesOrder(t *testing.T) {
	t.Parallel()

	queues := mocks.NewMockQueueStore()
	svc := service.NewTaskService(queues, discardLogger())
	alice, bob := uuid.New(), uuid.New()

	for _, task := range []string{`"a1"`, `"a2"`, `"a3"`} {
		require.NoError(t, svc.Enqueue(context.Background(), alice, json.RawMessage(task)))
	}
	require.NoError(t, svc.Enqueue(context.Background(), bob, json.RawMessage(`"b1"`)))

	assert.Equal(t, []string{`"a1"`, `"a2"`, `"a3"`}, queues.Items(store.QueueName(alice)))
	assert.Equal(t, []string{`"b1"`}, queues.Items(store.QueueName(bob)))
}
