package bootstrap

import (
	"lab-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
