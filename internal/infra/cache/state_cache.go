package cache

import (
	"context"
	"errors"
	"time"

	"lab-scheduler/internal/domain/equipment"
	"lab-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "equipment:state:"
	// EpochKey is bumped by every invalidation. It never collides with a uuid key.
	EpochKey = keyPrefix + "epoch"
)

// setIfEpoch writes KEYS[2] only while KEYS[1] still holds ARGV[1].
// A missing epoch counts as 0.
var setIfEpoch = redis.NewScript(`
	local current = redis.call('GET', KEYS[1]) or '0'
	if current ~= ARGV[1] then
		return 0
	end
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
	return 1
`)

// RedisCommands is the subset of *redis.Client the state cache needs.
type RedisCommands interface {
	redis.Scripter
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStateCache struct {
	client RedisCommands
	maxTTL time.Duration
}

// NewRedisStateCache caps every entry at maxTTL even when no boundary is coming.
func NewRedisStateCache(client RedisCommands, maxTTL time.Duration) *RedisStateCache {
	return &RedisStateCache{client: client, maxTTL: maxTTL}
}

func Key(equipmentID uuid.UUID) string {
	return keyPrefix + equipmentID.String()
}

func (c *RedisStateCache) Epoch(ctx context.Context) (int64, error) {
	epoch, err := c.client.Get(ctx, EpochKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "failed to read equipment state cache epoch")
	}
	return epoch, nil
}

func (c *RedisStateCache) Get(ctx context.Context, equipmentID uuid.UUID) (equipment.State, bool, error) {
	raw, err := c.client.Get(ctx, Key(equipmentID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(err, "failed to read equipment state from cache")
	}
	state := equipment.State(raw)
	if !state.IsValid() {
		return "", false, nil
	}
	return state, true, nil
}

// Set is dropped silently when an invalidation ran after epoch was read, so a
// state computed from an older snapshot cannot outlive the write that changed it.
func (c *RedisStateCache) Set(ctx context.Context, equipmentID uuid.UUID, state equipment.State, epoch int64, ttl time.Duration) error {
	if ttl <= 0 || ttl > c.maxTTL {
		ttl = c.maxTTL
	}
	ms := max(ttl.Milliseconds(), 1)
	keys := []string{EpochKey, Key(equipmentID)}
	if err := setIfEpoch.Run(ctx, c.client, keys, epoch, state.String(), ms).Err(); err != nil {
		return errs.Wrap(err, "failed to write equipment state to cache")
	}
	return nil
}

func (c *RedisStateCache) Invalidate(ctx context.Context, equipmentIDs ...uuid.UUID) error {
	if len(equipmentIDs) == 0 {
		return nil
	}
	keys := make([]string, len(equipmentIDs))
	for i, id := range equipmentIDs {
		keys[i] = Key(id)
	}
	// The epoch moves first so a reader that already holds the old one cannot
	// store behind the delete.
	if err := c.client.Incr(ctx, EpochKey).Err(); err != nil {
		return errs.Wrap(err, "failed to bump equipment state cache epoch")
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate equipment state cache")
	}
	return nil
}

// NoopStateCache is used when no Redis address is configured.
type NoopStateCache struct{}

func (NoopStateCache) Epoch(context.Context) (int64, error) {
	return 0, nil
}

func (NoopStateCache) Get(context.Context, uuid.UUID) (equipment.State, bool, error) {
	return "", false, nil
}

func (NoopStateCache) Set(context.Context, uuid.UUID, equipment.State, int64, time.Duration) error {
	return nil
}

func (NoopStateCache) Invalidate(context.Context, ...uuid.UUID) error {
	return nil
}
