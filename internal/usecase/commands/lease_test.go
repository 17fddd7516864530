//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/tests/common/builder"
	sharedmock "bus-seat-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var leaseNow = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

type leaseFixture struct {
	store *sharedmock.MockLeaseStore
	uow   *sharedmock.MockUnitOfWork
	reads *sharedmock.MockCommandReads
	uc    commands.LeaseCommands
}

func newLeaseFixture(t *testing.T) *leaseFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &leaseFixture{
		store: sharedmock.NewMockLeaseStore(ctrl),
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uc = commands.NewLeaseUseCase(f.store, f.uow, clock.NewMockClock(leaseNow), lease.TTL)
	return f
}

func (f *leaseFixture) expectSellable() {
	f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
}

func (f *leaseFixture) expectScopedSweep() {
	f.store.EXPECT().SweepExpired(gomock.Any(), gomock.Any(), leaseNow).
		DoAndReturn(func(_ context.Context, scope *shared.SweepScope, _ time.Time) (int64, error) {
			if scope == nil || scope.ScheduleID != 1 {
				return 0, errors.New("unexpected sweep scope")
			}
			return 0, nil
		})
}

func acquireRequest(seats ...string) commands.AcquireLeaseRequest {
	return commands.AcquireLeaseRequest{
		ScheduleID:  1,
		JourneyDate: "2026-11-02",
		SeatNumbers: seats,
		SessionID:   "sess-1",
		UserID:      uuid.New(),
	}
}

func TestLeaseUseCase_Acquire_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*commands.AcquireLeaseRequest)
	}{
		{name: "zero schedule id", mutate: func(r *commands.AcquireLeaseRequest) { r.ScheduleID = 0 }},
		{name: "malformed journey date", mutate: func(r *commands.AcquireLeaseRequest) { r.JourneyDate = "02-11-2026" }},
		{name: "no seats", mutate: func(r *commands.AcquireLeaseRequest) { r.SeatNumbers = nil }},
		{name: "malformed seat", mutate: func(r *commands.AcquireLeaseRequest) { r.SeatNumbers = []string{"A 1"} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newLeaseFixture(t)
			req := acquireRequest("A1")
			tc.mutate(&req)

			result, err := f.uc.Acquire(context.Background(), req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Nil(t, result)
		})
	}
}

func TestLeaseUseCase_Acquire_Schedule(t *testing.T) {
	t.Run("unknown schedule", func(t *testing.T) {
		f := newLeaseFixture(t)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound))

		_, err := f.uc.Acquire(context.Background(), acquireRequest("A1"))
		assert.True(t, errs.Is(err, errs.ErrScheduleNotFound))
	})

	t.Run("inactive schedule", func(t *testing.T) {
		f := newLeaseFixture(t)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).
			Return(builder.NewScheduleBuilder().AsInactive().BuildDomain(), nil)

		_, err := f.uc.Acquire(context.Background(), acquireRequest("A1"))
		assert.True(t, errs.Is(err, errs.ErrScheduleNotFound))
	})

	t.Run("catalog failure", func(t *testing.T) {
		f := newLeaseFixture(t)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("failed to get schedule", errors.New("connection reset")))

		_, err := f.uc.Acquire(context.Background(), acquireRequest("A1"))
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestLeaseUseCase_Acquire_PartitionsSeats(t *testing.T) {
	f := newLeaseFixture(t)
	f.expectSellable()
	f.expectScopedSweep()
	f.reads.EXPECT().BookedSeats(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		Return([]schedule.SeatNumber{"A1"}, nil)

	holder := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.Seat = "A3"
		b.SessionID = "sess-other"
	}).BuildDomain(leaseNow.Add(-4 * time.Minute))

	f.store.EXPECT().Acquire(gomock.Any(), gomock.Any(), leaseNow).
		DoAndReturn(func(_ context.Context, l lease.Lease, _ time.Time) (lease.Outcome, *lease.Lease, error) {
			assert.Equal(t, "sess-1", l.SessionID)
			assert.Equal(t, leaseNow.Add(lease.TTL), l.ExpiresAt)
			switch l.Seat {
			case "A2":
				return lease.OutcomeCreated, nil, nil
			case "A3":
				return lease.OutcomeHeldByOther, &holder, nil
			case "A4":
				return 0, nil, errors.New("store unavailable")
			case "A5":
				return lease.OutcomeRenewed, nil, nil
			}
			t.Fatalf("unexpected seat %s", l.Seat)
			return 0, nil, nil
		}).Times(4)

	result, err := f.uc.Acquire(context.Background(), acquireRequest("A1", "A2", "A3", "A4", "A5", "A2"))
	require.NoError(t, err)

	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, []schedule.SeatNumber{"A2", "A5"}, result.Granted)
	require.Len(t, result.Denied, 3)
	assert.Equal(t, 5, result.Total(), "duplicates collapse to distinct seats")

	byReason := map[schedule.SeatNumber]lease.Denial{}
	for _, d := range result.Denied {
		byReason[d.Seat] = d
	}
	assert.Equal(t, lease.ReasonAlreadyBooked, byReason["A1"].Reason)
	assert.Equal(t, lease.ReasonLockedByOther, byReason["A3"].Reason)
	assert.Equal(t, int64(360), byReason["A3"].SecondsRemaining)
	assert.Equal(t, lease.ReasonError, byReason["A4"].Reason)
}

func TestLeaseUseCase_Acquire_GeneratesSession(t *testing.T) {
	f := newLeaseFixture(t)
	f.expectSellable()
	f.expectScopedSweep()
	f.reads.EXPECT().BookedSeats(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)

	var used string
	f.store.EXPECT().Acquire(gomock.Any(), gomock.Any(), leaseNow).
		DoAndReturn(func(_ context.Context, l lease.Lease, _ time.Time) (lease.Outcome, *lease.Lease, error) {
			used = l.SessionID
			return lease.OutcomeCreated, nil, nil
		})

	req := acquireRequest("B4")
	req.SessionID = ""
	result, err := f.uc.Acquire(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, used, result.SessionID)
	assert.Equal(t, []schedule.SeatNumber{"B4"}, result.Granted)
}

func TestLeaseUseCase_Acquire_BookedLookupFailure(t *testing.T) {
	f := newLeaseFixture(t)
	f.expectSellable()
	f.expectScopedSweep()
	f.reads.EXPECT().BookedSeats(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))
	f.store.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := f.uc.Acquire(context.Background(), acquireRequest("A1", "A2"))
	require.NoError(t, err)

	assert.Empty(t, result.Granted)
	require.Len(t, result.Denied, 2)
	for _, d := range result.Denied {
		assert.Equal(t, lease.ReasonError, d.Reason)
	}
}

func TestLeaseUseCase_Acquire_SweepFailureIsTolerated(t *testing.T) {
	f := newLeaseFixture(t)
	f.expectSellable()
	f.store.EXPECT().SweepExpired(gomock.Any(), gomock.Any(), leaseNow).Return(int64(0), errors.New("sweep failed"))
	f.reads.EXPECT().BookedSeats(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.store.EXPECT().Acquire(gomock.Any(), gomock.Any(), leaseNow).Return(lease.OutcomeCreated, nil, nil)

	result, err := f.uc.Acquire(context.Background(), acquireRequest("A1"))
	require.NoError(t, err)
	assert.Equal(t, []schedule.SeatNumber{"A1"}, result.Granted)
}

func TestLeaseUseCase_Release(t *testing.T) {
	req := commands.ReleaseLeaseRequest{
		ScheduleID:  1,
		JourneyDate: "2026-11-02",
		SeatNumbers: []string{"A1", "A2"},
		SessionID:   "sess-1",
	}

	t.Run("releases only the session's seats", func(t *testing.T) {
		f := newLeaseFixture(t)
		f.store.EXPECT().
			Release(gomock.Any(), int64(1), schedule.MustParseJourneyDate("2026-11-02"), []schedule.SeatNumber{"A1", "A2"}, "sess-1", leaseNow).
			Return(int64(1), nil)

		n, err := f.uc.Release(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("session is required", func(t *testing.T) {
		f := newLeaseFixture(t)
		noSession := req
		noSession.SessionID = ""

		_, err := f.uc.Release(context.Background(), noSession)
		assert.ErrorIs(t, err, commands.ErrSessionRequired)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newLeaseFixture(t)
		f.store.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("timeout"))

		_, err := f.uc.Release(context.Background(), req)
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestLeaseUseCase_Sweep(t *testing.T) {
	f := newLeaseFixture(t)
	f.store.EXPECT().SweepExpired(gomock.Any(), (*shared.SweepScope)(nil), leaseNow).Return(int64(3), nil)

	n, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
