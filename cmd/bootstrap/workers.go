package bootstrap

import (
	"log/slog"

	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkersModule = fx.Module("workers",
	fx.Invoke(
		StartLeaseSweeper,
		StartOutboxRelay,
		StartDepartedCompleter,
	),
)

func StartLeaseSweeper(lc fx.Lifecycle, cfg config.Config, leases commands.LeaseCommands, logger *slog.Logger) {
	if cfg.Lease.SweepInterval <= 0 {
		logger.Info("lease sweeper disabled")
		return
	}
	worker.NewRunner(worker.NewLeaseSweeper(leases, logger), cfg.Lease.SweepInterval, logger).Attach(lc)
}

func StartOutboxRelay(
	lc fx.Lifecycle,
	cfg config.Config,
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if cfg.Events.RelayInterval <= 0 {
		logger.Info("outbox relay disabled")
		return
	}
	relay := worker.NewOutboxRelay(uow, publisher, clk, cfg.Events.RelayBatch, cfg.Events.MaxAttempts, logger)
	worker.NewRunner(relay, cfg.Events.RelayInterval, logger).Attach(lc)
}

func StartDepartedCompleter(lc fx.Lifecycle, cfg config.Config, bookings commands.BookingCommands, clk clock.Clock, logger *slog.Logger) {
	if cfg.Booking.CompleteInterval <= 0 {
		logger.Info("departed booking completer disabled")
		return
	}
	completer := worker.NewDepartedCompleter(bookings, clk, logger)
	worker.NewRunner(completer, cfg.Booking.CompleteInterval, logger).Attach(lc)
}
