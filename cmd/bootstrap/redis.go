package bootstrap

import (
	"context"
	"log/slog"

	"lab-scheduler/internal/infra/cache"
	"lab-scheduler/internal/pkg/config"
	"lab-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewStateCache,
	),
)

// NewStateCache falls back to a no-op cache when REDIS_ADDR is unset.
// An unreachable redis is logged, not fatal: the cache is only an accelerator.
func NewStateCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.StateCache {
	if cfg.Redis.Addr == "" {
		logger.Info("State cache disabled")
		return cache.NoopStateCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis unreachable, state cache will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisStateCache(client, cfg.Redis.StateTTL)
}
