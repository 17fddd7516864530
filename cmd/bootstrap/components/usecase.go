package components

import (
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/usecase"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(store shared.LeaseStore, uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.LeaseCommands {
			return commands.NewLeaseUseCase(store, uow, clk, cfg.Lease.TTL)
		},
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeaseQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
