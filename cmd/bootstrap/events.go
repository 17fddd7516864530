package bootstrap

import (
	"context"
	"log/slog"

	"bus-seat-booking/internal/infra/events"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	pub, err := events.NewPublisher(cfg.Events, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("event publisher configured", "broker", cfg.Events.Broker)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
