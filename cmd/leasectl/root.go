package main

import (
	"context"
	"log/slog"
	"os"

	"bus-seat-booking/cmd/bootstrap"
	"bus-seat-booking/cmd/bootstrap/components"
	"bus-seat-booking/internal/infra/db"
	"bus-seat-booking/internal/infra/readstore"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/infra/uow"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs. Built in PersistentPreRunE.
type app struct {
	leases   commands.LeaseCommands
	inspect  queries.LeaseQueries
	bookings commands.BookingCommands
	clock    clock.Clock
	closers  []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

var (
	backendFlag string
	cur         *app
)

var rootCmd = &cobra.Command{
	Use:   "leasectl",
	Short: "Maintenance commands for seat locks and bookings",
	Long: `leasectl runs the maintenance operations of the seat booking service against
the configured Postgres database and lease backend: sweeping expired seat locks,
inspecting the live locks of a schedule run and completing departed bookings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if backendFlag != "" {
			cfg.Lease.Backend = backendFlag
		}

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		cur = a
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if cur != nil {
			cur.Close()
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "lease backend override: postgres, redis or memory")
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	a := &app{clock: clock.NewRealClock()}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect database")
	}
	a.closers = append(a.closers, cleanup)

	var rdb redis.UniversalClient
	if cfg.Lease.Backend == "redis" {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
	}

	q := sqlc.New()
	store, err := components.NewLeaseStore(cfg, q, pool, rdb, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	unit := uow.NewPostgresUoW(pool, q)
	a.leases = commands.NewLeaseUseCase(store, unit, a.clock, cfg.Lease.TTL)
	a.inspect = queries.NewLeaseQueries(store, a.clock)
	a.bookings = commands.NewBookingUseCase(unit, store, queries.NewBookingQueries(readstore.NewBookingReadStore(q, pool), a.clock), a.clock)
	return a, nil
}
