package worker

import (
	"context"
	"log/slog"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/usecase/commands"
)

// LeaseSweeper physically deletes expired leases. Expired leases are already
// ignored everywhere, so this only bounds storage growth.
type LeaseSweeper struct {
	leases commands.LeaseCommands
	logger *slog.Logger
}

func NewLeaseSweeper(leases commands.LeaseCommands, logger *slog.Logger) *LeaseSweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaseSweeper{leases: leases, logger: logger}
}

func (s *LeaseSweeper) Name() string { return "lease-sweeper" }

func (s *LeaseSweeper) RunOnce(ctx context.Context) error {
	n, err := s.leases.Sweep(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Debug("expired leases swept", "deleted", n)
	}
	return nil
}

// DepartedCompleter moves confirmed bookings whose journey date has passed to completed.
type DepartedCompleter struct {
	bookings commands.BookingCommands
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDepartedCompleter(bookings commands.BookingCommands, clk clock.Clock, logger *slog.Logger) *DepartedCompleter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DepartedCompleter{bookings: bookings, clock: clk, logger: logger}
}

func (d *DepartedCompleter) Name() string { return "departed-completer" }

func (d *DepartedCompleter) RunOnce(ctx context.Context) error {
	today := schedule.JourneyDateOf(d.clock.Now())
	n, err := d.bookings.CompleteDeparted(ctx, today)
	if err != nil {
		return err
	}
	if n > 0 {
		d.logger.Info("departed bookings completed", "count", n, "before", today.String())
	}
	return nil
}
