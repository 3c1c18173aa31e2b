package components

import (
	"lab-scheduler/internal/pkg/clock"
	"lab-scheduler/internal/pkg/config"
	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.ReservationPolicy {
		return commands.ReservationPolicy{
			AllowDirectConfirm: cfg.Scheduler.AllowDirectConfirm,
			SweepBatchSize:     cfg.Scheduler.SweepBatchSize,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
		queries.NewUtilizationQueries,
	),
)
