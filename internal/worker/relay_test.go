//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/usecase/shared"
	sharedmock "bus-seat-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)

type nopDBTX struct{ sqlc.DBTX }

type relayFixture struct {
	uow       *sharedmock.MockUnitOfWork
	outbox    *sharedmock.MockOutboxRepository
	publisher *sharedmock.MockEventPublisher
	relay     *OutboxRelay
}

func newRelayFixture(t *testing.T, maxAttempts int32) *relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		outbox:    sharedmock.NewMockOutboxRepository(ctrl),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	tx.EXPECT().DB().Return(nopDBTX{}).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	f.relay = NewOutboxRelay(f.uow, f.publisher, clock.NewMockClock(relayNow), 10, maxAttempts, nil)
	return f
}

func outboxEvent(attempts int32) shared.OutboxEvent {
	return shared.OutboxEvent{
		ID:          uuid.New(),
		Topic:       shared.TopicBookingCreated,
		AggregateID: uuid.New(),
		Payload:     []byte(`{"bookingId":"x"}`),
		Attempts:    attempts,
		RunAt:       relayNow,
	}
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	ctx := context.Background()
	errBroker := errors.New("broker unavailable")

	t.Run("published events are marked sent", func(t *testing.T) {
		f := newRelayFixture(t, 5)
		ev := outboxEvent(1)

		gomock.InOrder(
			f.outbox.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), relayNow, int32(10)).Return([]shared.OutboxEvent{ev}, nil),
			f.publisher.EXPECT().Publish(gomock.Any(), ev.Topic, ev.AggregateID.String(), ev.Payload).Return(nil),
			f.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), ev.ID, relayNow).Return(nil),
		)

		require.NoError(t, f.relay.RunOnce(ctx))
	})

	t.Run("failed publish is rescheduled with backoff", func(t *testing.T) {
		f := newRelayFixture(t, 5)
		ev := outboxEvent(3)

		f.outbox.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), relayNow, int32(10)).Return([]shared.OutboxEvent{ev}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), ev.Topic, ev.AggregateID.String(), ev.Payload).Return(errBroker)
		f.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), ev.ID, shared.OutboxPending, "broker unavailable", relayNow.Add(8*time.Second), relayNow).Return(nil)

		require.NoError(t, f.relay.RunOnce(ctx))
	})

	t.Run("exhausted event goes dead", func(t *testing.T) {
		f := newRelayFixture(t, 5)
		ev := outboxEvent(5)

		f.outbox.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), relayNow, int32(10)).Return([]shared.OutboxEvent{ev}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errBroker)
		f.outbox.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), ev.ID, shared.OutboxDead, gomock.Any(), gomock.Any(), relayNow).Return(nil)

		require.NoError(t, f.relay.RunOnce(ctx))
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		f := newRelayFixture(t, 5)
		f.outbox.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		assert.Error(t, f.relay.RunOnce(ctx))
	})

	t.Run("nothing pending", func(t *testing.T) {
		f := newRelayFixture(t, 5)
		f.outbox.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		require.NoError(t, f.relay.RunOnce(ctx))
	})
}

func TestRelayBackoff(t *testing.T) {
	cases := []struct {
		attempts int32
		want     time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{4, 16 * time.Second},
		{8, 256 * time.Second},
		{9, 5 * time.Minute},
		{40, 5 * time.Minute},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, relayBackoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}
