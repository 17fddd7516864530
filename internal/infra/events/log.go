package events

import (
	"context"
	"log/slog"

	"bus-seat-booking/internal/usecase/shared"
)

// LogPublisher only logs events. Default broker for local runs and tests.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

var _ shared.EventPublisher = (*LogPublisher)(nil)

func (p *LogPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	p.logger.InfoContext(ctx, "event published", "topic", topic, "key", key, "payload", string(payload))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
