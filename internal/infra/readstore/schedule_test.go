//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/readstore"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/tests/common/builder"
	readstoremock "bus-seat-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)
		b := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.ID = 9 })

		mockQueries.EXPECT().GetScheduleForBooking(ctx, gomock.Any(), int64(9)).Return(b.BuildInfra(), nil)

		got, err := store.FindByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, b.BuildDomain(), got)
	})

	t.Run("error: unknown schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetScheduleForBooking(ctx, gomock.Any(), int64(404)).Return(sqlc.GetScheduleForBookingRow{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, 404)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestScheduleReadStore_BookedSeats(t *testing.T) {
	ctx := context.Background()
	date := schedule.MustParseJourneyDate("2026-11-02")

	t.Run("empty request skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := readstore.NewScheduleReadStore(readstoremock.NewMockScheduleReadQueries(ctrl), nil)

		booked, err := store.BookedSeats(ctx, 1, date, nil)
		require.NoError(t, err)
		assert.Empty(t, booked)
	})

	t.Run("returns the booked subset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListBookedSeats(ctx, gomock.Any(), sqlc.ListBookedSeatsParams{
			ScheduleID:  1,
			JourneyDate: pgconv.JourneyDateToPgtype(date),
			SeatNumbers: []string{"A1", "A2", "A3"},
		}).Return([]string{"A2"}, nil)

		booked, err := store.BookedSeats(ctx, 1, date, []schedule.SeatNumber{"A1", "A2", "A3"})
		require.NoError(t, err)
		assert.Equal(t, []schedule.SeatNumber{"A2"}, booked)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListBookedSeats(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.BookedSeats(ctx, 1, date, []schedule.SeatNumber{"A1"})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestScheduleReadStore_ClaimedSeatCount(t *testing.T) {
	ctx := context.Background()
	date := schedule.MustParseJourneyDate("2026-11-02")

	t.Run("counts the whole journey", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)

		mockQueries.EXPECT().CountClaimedSeats(ctx, gomock.Any(), sqlc.CountClaimedSeatsParams{
			ScheduleID:  1,
			JourneyDate: pgconv.JourneyDateToPgtype(date),
		}).Return(int64(38), nil)

		n, err := store.ClaimedSeatCount(ctx, 1, date)
		require.NoError(t, err)
		assert.Equal(t, int64(38), n)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, nil)

		mockQueries.EXPECT().CountClaimedSeats(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := store.ClaimedSeatCount(ctx, 1, date)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
