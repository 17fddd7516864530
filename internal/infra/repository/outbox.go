package repository

import (
	"context"
	"time"

	"bus-seat-booking/internal/infra"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventSentParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.OutboxRepository = (*OutboxRepository)(nil)

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, topic string, aggregateID uuid.UUID, payload []byte, runAt time.Time) error {
	err := r.queries.CreateOutboxEvent(ctx, tx, sqlc.CreateOutboxEventParams{
		ID:          uuid.New(),
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     payload,
		RunAt:       pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, sqlc.ClaimPendingOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: batchSize,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:          row.ID,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    row.Attempts,
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkOutboxEventSent(ctx, tx, sqlc.MarkOutboxEventSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status shared.OutboxStatus, lastErr string, runAt, now time.Time) error {
	params := sqlc.MarkOutboxEventFailedParams{
		Status:    string(status),
		LastError: pgtype.Text{String: lastErr, Valid: lastErr != ""},
		RunAt:     pgconv.TimeToPgtype(runAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
