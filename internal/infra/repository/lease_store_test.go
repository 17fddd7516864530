//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/repository"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/tests/common/builder"
	repositorymock "bus-seat-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

// =============================================================================
// Acquire
// =============================================================================

func TestSeatLeaseStore_Acquire(t *testing.T) {
	ctx := context.Background()
	requested := builder.NewLeaseBuilder().BuildDomain(now)
	holderRow := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.SessionID = "sess-other"
	}).BuildInfra(now.Add(-2 * time.Minute))
	expiredRow := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.SessionID = "sess-other"
	}).BuildInfra(now.Add(-lease.TTL))

	testCases := []struct {
		name        string
		setupMock   func(*repositorymock.MockSeatLeaseQueries, *mockDBTX)
		wantOutcome lease.Outcome
		wantHolder  string
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: free seat is created",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{Renewed: false}, nil)
			},
			wantOutcome: lease.OutcomeCreated,
		},
		{
			name: "success: same session renews",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{Renewed: true}, nil)
			},
			wantOutcome: lease.OutcomeRenewed,
		},
		{
			name: "denied: live holder is reported",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, pgx.ErrNoRows)
				m.EXPECT().GetSeatLease(ctx, db, gomock.Any()).Return(holderRow, nil)
			},
			wantOutcome: lease.OutcomeHeldByOther,
			wantHolder:  "sess-other",
		},
		{
			name: "retry: holder expired between statements",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				gomock.InOrder(
					m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, pgx.ErrNoRows),
					m.EXPECT().GetSeatLease(ctx, db, gomock.Any()).Return(expiredRow, nil),
					m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, nil),
				)
			},
			wantOutcome: lease.OutcomeCreated,
		},
		{
			name: "retry: holder deleted between statements",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				gomock.InOrder(
					m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, pgx.ErrNoRows),
					m.EXPECT().GetSeatLease(ctx, db, gomock.Any()).Return(sqlc.SeatLeases{}, pgx.ErrNoRows),
					m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, nil),
				)
			},
			wantOutcome: lease.OutcomeCreated,
		},
		{
			name: "error: upsert fails",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: slot keeps changing hands",
			setupMock: func(m *repositorymock.MockSeatLeaseQueries, db *mockDBTX) {
				m.EXPECT().AcquireSeatLease(ctx, db, gomock.Any()).Return(sqlc.AcquireSeatLeaseRow{}, pgx.ErrNoRows).Times(2)
				m.EXPECT().GetSeatLease(ctx, db, gomock.Any()).Return(sqlc.SeatLeases{}, pgx.ErrNoRows).Times(2)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
			mockDB := &mockDBTX{}
			store := repository.NewSeatLeaseStore(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			outcome, holder, err := store.Acquire(ctx, requested, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOutcome, outcome)
			if tc.wantHolder != "" {
				require.NotNil(t, holder)
				assert.Equal(t, tc.wantHolder, holder.SessionID)
				assert.True(t, holder.IsLive(now))
			} else {
				assert.Nil(t, holder)
			}
		})
	}
}

func TestSeatLeaseStore_AcquireParams(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewSeatLeaseStore(mockQueries, mockDB)

	l := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) { b.Seat = "L12" }).BuildDomain(now)
	mockQueries.EXPECT().AcquireSeatLease(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AcquireSeatLeaseParams) (sqlc.AcquireSeatLeaseRow, error) {
			assert.Equal(t, int64(1), arg.ScheduleID)
			assert.Equal(t, "L12", arg.SeatNumber)
			assert.Equal(t, "sess-1", arg.SessionID)
			assert.True(t, arg.UserID.Valid)
			assert.Equal(t, now, arg.LockedAt.Time)
			assert.Equal(t, now.Add(lease.TTL), arg.ExpiresAt.Time)
			assert.Equal(t, "2026-11-02", arg.JourneyDate.Time.Format("2006-01-02"))
			return sqlc.AcquireSeatLeaseRow{}, nil
		})

	_, _, err := store.Acquire(ctx, l, now)
	require.NoError(t, err)
}

// =============================================================================
// Release / ListLive / SweepExpired
// =============================================================================

func TestSeatLeaseStore_Release(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewSeatLeaseStore(mockQueries, mockDB)
	date := schedule.MustParseJourneyDate("2026-11-02")

	mockQueries.EXPECT().ReleaseSeatLeases(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ReleaseSeatLeasesParams) (int64, error) {
			assert.Equal(t, "sess-1", arg.SessionID)
			assert.Equal(t, []string{"A1", "A2"}, arg.SeatNumbers)
			assert.Equal(t, pgconv.TimeToPgtype(now), arg.Now)
			return 1, nil
		})

	n, err := store.Release(ctx, 1, date, []schedule.SeatNumber{"A1", "A2"}, "sess-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mockQueries.EXPECT().ReleaseSeatLeases(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = store.Release(ctx, 1, date, []schedule.SeatNumber{"A1"}, "sess-1", now)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestSeatLeaseStore_ListLive(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewSeatLeaseStore(mockQueries, mockDB)

	row := builder.NewLeaseBuilder().BuildInfra(now.Add(-time.Minute))
	mockQueries.EXPECT().ListLiveSeatLeases(ctx, mockDB, gomock.Any()).Return([]sqlc.SeatLeases{row}, nil)

	leases, err := store.ListLive(ctx, 1, schedule.MustParseJourneyDate("2026-11-02"), now)
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, schedule.SeatNumber("A1"), leases[0].Seat)
	assert.Equal(t, "2026-11-02", leases[0].JourneyDate.String())
	assert.Equal(t, int64(540), leases[0].SecondsRemaining(now))
}

func TestSeatLeaseStore_SweepExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("global sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
		mockDB := &mockDBTX{}
		store := repository.NewSeatLeaseStore(mockQueries, mockDB)
		mockQueries.EXPECT().DeleteExpiredSeatLeases(ctx, mockDB, gomock.Any()).Return(int64(4), nil)

		n, err := store.SweepExpired(ctx, nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("scoped sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSeatLeaseQueries(ctrl)
		mockDB := &mockDBTX{}
		store := repository.NewSeatLeaseStore(mockQueries, mockDB)
		mockQueries.EXPECT().DeleteExpiredSeatLeasesForSchedule(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.DeleteExpiredSeatLeasesForScheduleParams) (int64, error) {
				assert.Equal(t, int64(9), arg.ScheduleID)
				return 1, nil
			})

		n, err := store.SweepExpired(ctx, &shared.SweepScope{ScheduleID: 9, JourneyDate: schedule.MustParseJourneyDate("2026-11-02")}, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
