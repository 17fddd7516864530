//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/repository"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/tests/common/builder"
	repositorymock "bus-seat-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingRepo(t *testing.T) (*repositorymock.MockBookingWriteQueries, *mockDBTX, *repository.BookingRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return mockQueries, mockDB, repository.NewBookingRepository(mockQueries, mockDB)
}

// =============================================================================
// Create
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking stored"},
		{name: "error: database failure", mockErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{
			name:       "error: duplicate reference",
			mockErr:    &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: unknown schedule",
			mockErr:    &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries, mockDB, repo := newBookingRepo(t)
			b, err := builder.NewBookingBuilder().BuildDomain(now)
			require.NoError(t, err)

			mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, int32(2), arg.NumberOfSeats)
					assert.Equal(t, []string{"A1", "A2"}, arg.SeatNumbers)
					assert.Equal(t, int64(120000), arg.TotalAmountCents)
					assert.Equal(t, "confirmed", arg.BookingStatus)
					return tc.mockErr
				})

			err = repo.Create(ctx, mockDB, b)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// ClaimSeats / ReleaseSeats
// =============================================================================

func TestBookingRepository_ClaimSeats(t *testing.T) {
	ctx := context.Background()
	mockQueries, mockDB, repo := newBookingRepo(t)
	b, err := builder.NewBookingBuilder().WithSeats("S", "D").BuildDomain(now)
	require.NoError(t, err)

	mockQueries.EXPECT().ClaimBookingSeats(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimBookingSeatsParams) ([]string, error) {
			assert.Equal(t, b.ID(), arg.BookingID)
			assert.Equal(t, []string{"S", "D"}, arg.SeatNumbers)
			return []string{"D"}, nil
		})

	claimed, err := repo.ClaimSeats(ctx, mockDB, b)
	require.NoError(t, err)
	assert.Equal(t, []schedule.SeatNumber{"D"}, claimed)
}

func TestBookingRepository_ReleaseSeats(t *testing.T) {
	ctx := context.Background()
	mockQueries, mockDB, repo := newBookingRepo(t)
	id := uuid.New()

	mockQueries.EXPECT().ReleaseBookingSeats(ctx, mockDB, id).Return(int64(2), nil)
	n, err := repo.ReleaseSeats(ctx, mockDB, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// =============================================================================
// FindForUpdate / UpdateStatus
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		mockQueries, mockDB, repo := newBookingRepo(t)
		row := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildInfra(now)
		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		b, err := repo.FindForUpdate(ctx, mockDB, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(120000), b.Total().Cents())
		assert.Equal(t, "2026-11-02", b.JourneyDate().String())
		assert.Equal(t, []schedule.SeatNumber{"A1", "A2"}, b.Seats())
	})

	t.Run("error: not found", func(t *testing.T) {
		mockQueries, mockDB, repo := newBookingRepo(t)
		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: status moved", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", mockErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries, mockDB, repo := newBookingRepo(t)
			b, err := builder.NewBookingBuilder().BuildDomain(now)
			require.NoError(t, err)
			require.NoError(t, b.Cancel(now))

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "cancelled", arg.BookingStatus)
					assert.Equal(t, "confirmed", arg.ExpectedStatus)
					return tc.rows, tc.mockErr
				})

			err = repo.UpdateStatus(ctx, mockDB, b, booking.StatusConfirmed)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_CompleteDeparted(t *testing.T) {
	ctx := context.Background()
	mockQueries, mockDB, repo := newBookingRepo(t)
	rows := []sqlc.CompleteDepartedBookingsRow{{ID: uuid.New(), UserID: uuid.New()}}

	mockQueries.EXPECT().CompleteDepartedBookings(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CompleteDepartedBookingsParams) ([]sqlc.CompleteDepartedBookingsRow, error) {
			assert.Equal(t, "2026-11-01", arg.Before.Time.Format("2006-01-02"))
			return rows, nil
		})

	done, err := repo.CompleteDeparted(ctx, mockDB, schedule.MustParseJourneyDate("2026-11-01"), now)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, rows[0].ID, done[0].ID)
}
