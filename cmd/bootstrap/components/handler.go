package components

import (
	"lab-scheduler/internal/handler"
	"lab-scheduler/internal/handler/api"
	"lab-scheduler/internal/handler/middleware"
	"lab-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEquipmentHandler,
		api.NewReservationHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(e *api.EquipmentHandler, r *api.ReservationHandler, s *api.StatsHandler) handler.Handlers {
			return handler.Handlers{Equipment: e, Reservation: r, Stats: s}
		},
		func(a *middleware.AuthMiddleware, l *middleware.Logger, rl *middleware.RateLimiter) handler.Middlewares {
			return handler.Middlewares{Auth: a, Logger: l, RateLimit: rl}
		},
	),
	fx.Invoke(handler.NewRouter),
)
