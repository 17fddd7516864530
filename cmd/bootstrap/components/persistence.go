package components

import (
	"log/slog"

	"bus-seat-booking/internal/infra/memstore"
	"bus-seat-booking/internal/infra/readstore"
	"bus-seat-booking/internal/infra/redisstore"
	"bus-seat-booking/internal/infra/repository"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/infra/uow"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Seat leases
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SeatLeaseQueries)),
		),
		NewLeaseStore,
	),
)

// NewLeaseStore picks the lease backend. memory is only correct for a single instance.
func NewLeaseStore(cfg config.Config, leaseQueries repository.SeatLeaseQueries, db sqlc.DBTX, rdb redis.UniversalClient, logger *slog.Logger) (shared.LeaseStore, error) {
	switch cfg.Lease.Backend {
	case "", "postgres":
		return repository.NewSeatLeaseStore(leaseQueries, db), nil
	case "redis":
		if rdb == nil {
			return nil, errs.New("lease backend redis requires a redis client")
		}
		return redisstore.New(rdb, cfg.Redis.Prefix), nil
	case "memory":
		logger.Warn("in-memory lease store selected; seat locks are not shared between instances")
		return memstore.New(), nil
	default:
		return nil, errs.Newf("unknown lease backend %q", cfg.Lease.Backend)
	}
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
