package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"lab-scheduler/internal/infra/db"
	"lab-scheduler/internal/infra/memstore"
	"lab-scheduler/internal/infra/readstore"
	"lab-scheduler/internal/infra/sqlc"
	"lab-scheduler/internal/infra/uow"
	"lab-scheduler/internal/pkg/config"
	"lab-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UoW     shared.UnitOfWork
	Members shared.MemberDirectory
}

// NewPersistence picks the storage backend from STORAGE_DRIVER. The memory
// driver has no member table, so every member id is accepted.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Info("Using in-memory storage")
		return Persistence{
			UoW:     memstore.NewUoW(),
			Members: readstore.OpenDirectory{},
		}, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return Persistence{}, err
	}
	q := sqlc.New()
	return Persistence{
		UoW:     uow.NewPostgresUoW(pool, q),
		Members: readstore.NewMemberDirectory(q, pool),
	}, nil
}

const dbStartupTimeout = 30 * time.Second

// NewDB connects and, unless disabled, migrates before the first request is served.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbStartupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("Database migrations applied")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
