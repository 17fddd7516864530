package components

import (
	"bus-seat-booking/internal/handler"
	"bus-seat-booking/internal/handler/api"
	"bus-seat-booking/internal/handler/middleware"
	"bus-seat-booking/internal/handler/validation"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cmds commands.LeaseCommands, q queries.LeaseQueries, cfg config.Config) *api.LeaseHandler {
			return api.NewLeaseHandler(cmds, q, cfg.Lease.TTL)
		},
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewEngine,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

func NewHandlers(
	lease *api.LeaseHandler,
	booking *api.BookingHandler,
	auth *middleware.AuthMiddleware,
	cfg config.Config,
	rdb redis.UniversalClient,
) handler.Handlers {
	return handler.Handlers{
		Lease:     lease,
		Booking:   booking,
		Auth:      auth,
		RateLimit: middleware.NewTokenBucket(cfg.RateLimit, rdb),
	}
}

// NewEngine is provided separately so tests can build the same router.
func NewEngine() *gin.Engine {
	return gin.New()
}
