package worker

import (
	"context"
	"log/slog"
	"time"

	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/shared"
)

const (
	relayBackoffBase = 2 * time.Second
	relayBackoffMax  = 5 * time.Minute
)

// OutboxRelay moves committed outbox events to the broker. Delivery is at least
// once: an event is marked sent only after the publisher accepted it.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger
}

func NewOutboxRelay(
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	clk clock.Clock,
	batchSize, maxAttempts int32,
	logger *slog.Logger,
) *OutboxRelay {
	if batchSize <= 0 {
		batchSize = 50
	}
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (r *OutboxRelay) Name() string { return "outbox-relay" }

func (r *OutboxRelay) RunOnce(ctx context.Context) error {
	var events []shared.OutboxEvent
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		events, err = tx.Outbox().ClaimPending(ctx, tx.DB(), r.clock.Now(), r.batchSize)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "failed to claim outbox events")
	}

	for _, ev := range events {
		pubErr := r.publisher.Publish(ctx, ev.Topic, ev.AggregateID.String(), ev.Payload)
		if err := r.settle(ctx, ev, pubErr); err != nil {
			return err
		}
	}
	return nil
}

func (r *OutboxRelay) settle(ctx context.Context, ev shared.OutboxEvent, pubErr error) error {
	now := r.clock.Now()
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if pubErr == nil {
			return tx.Outbox().MarkSent(ctx, tx.DB(), ev.ID, now)
		}

		status := shared.OutboxPending
		if ev.Attempts >= r.maxAttempts {
			status = shared.OutboxDead
		}
		r.logger.Warn("outbox publish failed",
			"event_id", ev.ID.String(),
			"topic", ev.Topic,
			"attempts", ev.Attempts,
			"status", string(status),
			"error", pubErr.Error())
		return tx.Outbox().MarkFailed(ctx, tx.DB(), ev.ID, status, pubErr.Error(), now.Add(relayBackoff(ev.Attempts)), now)
	})
}

func relayBackoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := relayBackoffBase
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= relayBackoffMax {
			return relayBackoffMax
		}
	}
	return d
}
