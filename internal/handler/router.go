package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lab-scheduler/internal/domain/member"
	"lab-scheduler/internal/handler/api"
	"lab-scheduler/internal/handler/middleware"
	"lab-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Equipment   *api.EquipmentHandler
	Reservation *api.ReservationHandler
	Stats       *api.StatsHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{mw.Auth.RequireRoleAtLeast(member.RoleAdmin), mw.RateLimit.Limit()}
	staff := []gin.HandlerFunc{mw.Auth.RequireRoleAtLeast(member.RoleTechnician), mw.RateLimit.Limit()}
	write := []gin.HandlerFunc{mw.RateLimit.Limit()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(mw.Auth.RequireAuth())
	{
		equipment := apiGroup.Group("/equipment")
		addRoutes(equipment, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create, Mw: admin},
			{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Equipment.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete, Mw: admin},
			{Method: http.MethodPost, Path: "/:id/maintenance", Handler: h.Equipment.SetMaintenance, Mw: admin},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Equipment.ListReservations},
			{Method: http.MethodGet, Path: "/:id/conflicts", Handler: h.Equipment.ListConflicts},
			{Method: http.MethodGet, Path: "/:id/utilization", Handler: h.Equipment.Utilization},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: write},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/count", Handler: h.Reservation.Count},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm, Mw: staff},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: write},
			{Method: http.MethodPost, Path: "/:id/expire", Handler: h.Reservation.Expire, Mw: admin},
			{Method: http.MethodPatch, Path: "/:id/schedule", Handler: h.Reservation.Reschedule, Mw: write},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: admin},
		})

		addRoutes(apiGroup.Group("/members"), []route{
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListForMember},
		})
		addRoutes(apiGroup.Group("/stats"), []route{
			{Method: http.MethodGet, Path: "/members", Handler: h.Stats.MemberStats},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
