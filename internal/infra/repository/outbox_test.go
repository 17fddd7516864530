//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/repository"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/shared"
	repositorymock "bus-seat-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)
	aggregateID := uuid.New()

	mockQueries.EXPECT().CreateOutboxEvent(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error {
			assert.NotEqual(t, uuid.Nil, arg.ID)
			assert.Equal(t, shared.TopicBookingCreated, arg.Topic)
			assert.Equal(t, aggregateID, arg.AggregateID)
			assert.JSONEq(t, `{"a":1}`, string(arg.Payload))
			return nil
		})

	require.NoError(t, repo.Enqueue(ctx, mockDB, shared.TopicBookingCreated, aggregateID, []byte(`{"a":1}`), now))

	mockQueries.EXPECT().CreateOutboxEvent(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))
	err := repo.Enqueue(ctx, mockDB, shared.TopicBookingCreated, aggregateID, []byte(`{}`), now)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	row := sqlc.OutboxEvents{
		ID:          uuid.New(),
		Topic:       shared.TopicBookingCancelled,
		AggregateID: uuid.New(),
		Payload:     []byte(`{}`),
		Status:      string(shared.OutboxProcessing),
		Attempts:    2,
		RunAt:       pgconv.TimeToPgtype(now.Add(5 * time.Minute)),
	}
	mockQueries.EXPECT().ClaimPendingOutboxEvents(ctx, mockDB, sqlc.ClaimPendingOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: 25,
	}).Return([]sqlc.OutboxEvents{row}, nil)

	events, err := repo.ClaimPending(ctx, mockDB, now, 25)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, row.ID, events[0].ID)
	assert.Equal(t, row.AggregateID, events[0].AggregateID)
	assert.Equal(t, int32(2), events[0].Attempts)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)
	id := uuid.New()
	retryAt := now.Add(4 * time.Second)

	mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, sqlc.MarkOutboxEventFailedParams{
		Status:    "pending",
		LastError: pgconv.StringToPgtype("broker unavailable"),
		RunAt:     pgconv.TimeToPgtype(retryAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ID:        id,
	}).Return(nil)

	require.NoError(t, repo.MarkFailed(ctx, mockDB, id, shared.OutboxPending, "broker unavailable", retryAt, now))
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)
	id := uuid.New()

	mockQueries.EXPECT().MarkOutboxEventSent(ctx, mockDB, sqlc.MarkOutboxEventSentParams{ID: id, UpdatedAt: pgconv.TimeToPgtype(now)}).Return(nil)
	require.NoError(t, repo.MarkSent(ctx, mockDB, id, now))
}
