package redis

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/store"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*QueueStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewQueueStore(client, 0), mr
}

func TestQueueStore_PopHead_MissingQueueIsEmpty(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	item, err := s.PopHead(context.Background(), store.QueueName(uuid.New()))
	assert.Nil(t, item)
	assert.ErrorIs(t, err, store.ErrQueueEmpty)
}

func TestQueueStore_FIFO(t *testing.T) {
	t.Parallel()

	s, mr := newTestStore(t)
	ctx := context.Background()
	queue := store.QueueName(uuid.New())

	tasks := []string{`"t1"`, `{"n":2}`, `[3]`, `"t4"`}
	for _, task := range tasks {
		require.NoError(t, s.PushTail(ctx, queue, []byte(task)))
	}

	n, err := s.Len(ctx, queue)
	require.NoError(t, err)
	assert.EqualValues(t, len(tasks), n)

	// The list lives under the per-user key.
	stored, err := mr.List(queue)
	require.NoError(t, err)
	assert.Equal(t, tasks, stored)

	for _, want := range tasks {
		got, err := s.PopHead(ctx, queue)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}

	_, err = s.PopHead(ctx, queue)
	assert.ErrorIs(t, err, store.ErrQueueEmpty)
}

func TestQueueStore_PushHead(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	queue := store.QueueName(uuid.New())

	require.NoError(t, s.PushTail(ctx, queue, []byte(`"second"`)))
	require.NoError(t, s.PushHead(ctx, queue, []byte(`"first"`)))

	first, err := s.PopHead(ctx, queue)
	require.NoError(t, err)
	assert.Equal(t, `"first"`, string(first))

	second, err := s.PopHead(ctx, queue)
	require.NoError(t, err)
	assert.Equal(t, `"second"`, string(second))
}

func TestQueueStore_QueuesAreIsolatedPerUser(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	alice := store.QueueName(uuid.New())
	bob := store.QueueName(uuid.New())

	require.NoError(t, s.PushTail(ctx, alice, []byte(`"a"`)))

	_, err := s.PopHead(ctx, bob)
	assert.ErrorIs(t, err, store.ErrQueueEmpty)

	got, err := s.PopHead(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(got))
}

func TestQueueStore_ConcurrentPushesNoLossNoDuplication(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	queue := store.QueueName(uuid.New())

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.PushTail(ctx, queue, []byte(fmt.Sprintf(`"task%d"`, i))))
		}(i)
	}
	wg.Wait()

	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		item, err := s.PopHead(ctx, queue)
		require.NoError(t, err)
		seen[string(item)]++
	}

	assert.Len(t, seen, n)
	for item, count := range seen {
		assert.Equal(t, 1, count, "item %s popped more than once", item)
	}

	_, err := s.PopHead(ctx, queue)
	assert.ErrorIs(t, err, store.ErrQueueEmpty)
}

func TestQueueStore_Unavailable(t *testing.T) {
	t.Parallel()

	s, mr := newTestStore(t)
	mr.Close()

	ctx := context.Background()
	queue := store.QueueName(uuid.New())

	assert.ErrorIs(t, s.PushTail(ctx, queue, []byte(`"x"`)), store.ErrStoreUnavailable)

	_, err := s.PopHead(ctx, queue)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, store.ErrQueueEmpty)

	assert.ErrorIs(t, s.Ping(ctx), store.ErrStoreUnavailable)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := NewClient(context.Background(), config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
