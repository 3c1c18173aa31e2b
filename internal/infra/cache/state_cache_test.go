//go:build unit

package cache_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis runs the epoch-guarded write in Go; the Lua body itself is
// covered against a real server in state_cache_redis_test.go.
type fakeRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	deleted []string
	failGet error
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.values, k)
	}
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedis) setIfEpoch(keys []string, args []interface{}) *redis.Cmd {
	if f.failSet != nil {
		return redis.NewCmdResult(nil, f.failSet)
	}
	current, ok := f.values[keys[0]]
	if !ok {
		current = "0"
	}
	if current != fmt.Sprint(args[0]) {
		return redis.NewCmdResult(int64(0), nil)
	}
	f.values[keys[1]] = args[1].(string)
	f.ttls[keys[1]] = time.Duration(args[2].(int64)) * time.Millisecond
	return redis.NewCmdResult(int64(1), nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.setIfEpoch(keys, args)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.setIfEpoch(keys, args)
}

func (f *fakeRedis) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.setIfEpoch(keys, args)
}

func (f *fakeRedis) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.setIfEpoch(keys, args)
}

func (f *fakeRedis) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeRedis) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRedisStateCache(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("miss", func(t *testing.T) {
		c := cache.NewRedisStateCache(newFakeRedis(), time.Hour)
		_, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisStateCache(fake, time.Hour)

		require.NoError(t, c.Set(ctx, id, equipment.StateReserved, 0, 5*time.Minute))
		state, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, equipment.StateReserved, state)
		assert.Equal(t, 5*time.Minute, fake.ttls[cache.Key(id)])
	})

	t.Run("ttl is capped", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisStateCache(fake, time.Hour)

		require.NoError(t, c.Set(ctx, id, equipment.StateFree, 0, 0))
		assert.Equal(t, time.Hour, fake.ttls[cache.Key(id)])
		require.NoError(t, c.Set(ctx, id, equipment.StateFree, 0, 48*time.Hour))
		assert.Equal(t, time.Hour, fake.ttls[cache.Key(id)])
	})

	t.Run("garbage value is a miss", func(t *testing.T) {
		fake := newFakeRedis()
		fake.values[cache.Key(id)] = "broken"
		_, ok, err := cache.NewRedisStateCache(fake, time.Hour).Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("backend error", func(t *testing.T) {
		fake := newFakeRedis()
		fake.failGet = errors.New("connection refused")
		_, _, err := cache.NewRedisStateCache(fake, time.Hour).Get(ctx, id)
		require.Error(t, err)
	})

	t.Run("invalidate", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisStateCache(fake, time.Hour)
		other := uuid.New()

		require.NoError(t, c.Invalidate(ctx))
		assert.Empty(t, fake.deleted)

		require.NoError(t, c.Invalidate(ctx, id, other))
		assert.ElementsMatch(t, []string{cache.Key(id), cache.Key(other)}, fake.deleted)
		assert.Equal(t, "1", fake.values[cache.EpochKey])
	})

	t.Run("epoch starts at zero and moves on invalidate", func(t *testing.T) {
		c := cache.NewRedisStateCache(newFakeRedis(), time.Hour)

		epoch, err := c.Epoch(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), epoch)

		require.NoError(t, c.Invalidate(ctx, id))
		epoch, err = c.Epoch(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), epoch)
	})

	t.Run("set with an epoch older than an invalidation is dropped", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisStateCache(fake, time.Hour)

		epoch, err := c.Epoch(ctx)
		require.NoError(t, err)
		// A reservation commits and invalidates while the reader is still projecting.
		require.NoError(t, c.Invalidate(ctx, id))
		require.NoError(t, c.Set(ctx, id, equipment.StateFree, epoch, time.Minute))

		_, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set with the current epoch is kept", func(t *testing.T) {
		fake := newFakeRedis()
		c := cache.NewRedisStateCache(fake, time.Hour)
		require.NoError(t, c.Invalidate(ctx, id))

		epoch, err := c.Epoch(ctx)
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, id, equipment.StateReserved, epoch, time.Minute))

		state, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, equipment.StateReserved, state)
	})

	t.Run("write error is returned", func(t *testing.T) {
		fake := newFakeRedis()
		fake.failSet = errors.New("connection refused")

		err := cache.NewRedisStateCache(fake, time.Hour).Set(ctx, id, equipment.StateFree, 0, time.Minute)
		require.Error(t, err)
	})

	t.Run("epoch read error", func(t *testing.T) {
		fake := newFakeRedis()
		fake.failGet = errors.New("connection refused")

		_, err := cache.NewRedisStateCache(fake, time.Hour).Epoch(ctx)
		require.Error(t, err)
	})
}
