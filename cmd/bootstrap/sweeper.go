package bootstrap

import (
	"context"
	"log/slog"

	"lab-scheduler/internal/pkg/config"
	"lab-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewSweeper(cmds commands.ReservationCommands, cfg config.Config, logger *slog.Logger) *commands.Sweeper {
	return commands.NewSweeper(cmds, cfg.Scheduler.SweepInterval, logger)
}

func startSweeper(lc fx.Lifecycle, sweeper *commands.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
