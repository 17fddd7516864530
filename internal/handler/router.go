package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/handler/api"
	"bus-seat-booking/internal/handler/middleware"
	"bus-seat-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups what the router needs so that wiring stays in one place.
type Handlers struct {
	Lease     *api.LeaseHandler
	Booking   *api.BookingHandler
	Auth      *middleware.AuthMiddleware
	RateLimit gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := h.RateLimit
	if rateLimit == nil {
		rateLimit = func(c *gin.Context) { c.Next() }
	}
	operatorOnly := h.Auth.RequireRoleAtLeast(user.RoleOperator)

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		locks := apiGroup.Group("/seat-locks")
		addRoutes(locks, []route{
			{Method: http.MethodPost, Path: "/lock", Handler: h.Lease.Lock, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodPost, Path: "/unlock", Handler: h.Lease.Unlock},
			{Method: http.MethodGet, Path: "/check", Handler: h.Lease.Check},
			{Method: http.MethodDelete, Path: "/cleanup", Handler: h.Lease.Cleanup, Mw: []gin.HandlerFunc{operatorOnly}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/create", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/my-bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/upcoming", Handler: h.Booking.ListUpcoming},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/settle-payment", Handler: h.Booking.SettlePayment, Mw: []gin.HandlerFunc{operatorOnly}},
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
