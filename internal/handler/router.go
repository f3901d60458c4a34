package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-scheduler/internal/handler/api"
	"appointment-scheduler/internal/handler/middleware"
	"appointment-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Appointments *api.AppointmentHandler
	Availability *api.AvailabilityHandler
	Services     *api.ServiceHandler
}

func NewHandlers(appointments *api.AppointmentHandler, availability *api.AvailabilityHandler, services *api.ServiceHandler) Handlers {
	return Handlers{Appointments: appointments, Availability: availability, Services: services}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Services.List},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},
		})

		requireAdmin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/available-slots", Handler: h.Availability.AvailableSlots},
				{Method: http.MethodGet, Path: "/validate", Handler: h.Availability.Validate},
				{Method: http.MethodGet, Path: "/booked", Handler: h.Availability.Booked},
				{Method: http.MethodPost, Path: "", Handler: h.Appointments.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Appointments.ListMine},
				{Method: http.MethodPost, Path: "/admin", Handler: h.Appointments.CreateForOwner, Mw: requireAdmin},
				{Method: http.MethodGet, Path: "/all", Handler: h.Appointments.ListAll, Mw: requireAdmin},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Appointments.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointments.Cancel},
				{Method: http.MethodDelete, Path: "/:id/complete", Handler: h.Appointments.Complete, Mw: requireAdmin},
			})
		}
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
