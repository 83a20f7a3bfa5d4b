package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisStore struct {
	values map[string]string
}

func newFakeRedisStore() *fakeRedisStore {
	return &fakeRedisStore{values: make(map[string]string)}
}

func (r *fakeRedisStore) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	return nil
}

func (r *fakeRedisStore) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeRedisStore) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

func (r *fakeRedisStore) Expire(ctx context.Context, key string, exp time.Duration) error {
	if _, exists := r.values[key]; !exists {
		return fmt.Errorf("key %s does not exist", key)
	}
	return nil
}

func newLockServiceForTest(store *fakeRedisStore) *lockService {
	return &lockService{redisRepo: store, Log: zap.NewNop()}
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquires a free lock and blocks a second holder", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		acquired, token, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)

		acquired, _, err = service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("releases an owned lock", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		_, token, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)

		require.NoError(t, service.Unlock(ctx, "job:leader", token))

		acquired, _, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("refuses to release another holder's lock", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		_, _, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)

		err = service.Unlock(ctx, "job:leader", "someone-else")
		assert.Error(t, err)
		assert.Contains(t, store.values, "job:leader")
	})

	t.Run("releasing a missing lock is a no-op", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		assert.NoError(t, service.Unlock(ctx, "job:leader", "any"))
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("extends an owned lock", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		_, token, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)

		assert.NoError(t, service.Refresh(ctx, "job:leader", token, time.Minute))
	})

	t.Run("refuses to extend another holder's lock", func(t *testing.T) {
		store := newFakeRedisStore()
		service := newLockServiceForTest(store)

		_, _, err := service.TryLock(ctx, "job:leader", time.Minute)
		require.NoError(t, err)

		assert.Error(t, service.Refresh(ctx, "job:leader", "someone-else", time.Minute))
	})
}
