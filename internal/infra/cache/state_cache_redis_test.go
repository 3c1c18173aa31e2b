//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStateCache_Server(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	c := cache.NewRedisStateCache(client, time.Hour)

	t.Run("write under the current epoch is stored with its ttl", func(t *testing.T) {
		id := uuid.New()
		epoch, err := c.Epoch(ctx)
		require.NoError(t, err)

		require.NoError(t, c.Set(ctx, id, equipment.StateReserved, epoch, 90*time.Second))

		state, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, equipment.StateReserved, state)
		ttl, err := client.PTTL(ctx, cache.Key(id)).Result()
		require.NoError(t, err)
		assert.InDelta(t, float64(90*time.Second), float64(ttl), float64(time.Second))
	})

	t.Run("write that raced an invalidation is refused", func(t *testing.T) {
		id := uuid.New()
		epoch, err := c.Epoch(ctx)
		require.NoError(t, err)

		require.NoError(t, c.Invalidate(ctx, id))
		require.NoError(t, c.Set(ctx, id, equipment.StateFree, epoch, time.Minute))

		_, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
		next, err := c.Epoch(ctx)
		require.NoError(t, err)
		assert.Equal(t, epoch+1, next)
	})
}
