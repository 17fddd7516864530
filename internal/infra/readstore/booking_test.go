//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/readstore"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	readstoremock "bus-seat-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	viewNow             = time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)
)

func viewRow(id, userID uuid.UUID) sqlc.GetBookingViewByIDRow {
	return sqlc.GetBookingViewByIDRow{
		ID:               id,
		BookingReference: "BK20261101ABCDEF",
		UserID:           userID,
		ScheduleID:       7,
		JourneyDate:      pgconv.JourneyDateToPgtype(schedule.MustParseJourneyDate("2026-11-02")),
		NumberOfSeats:    2,
		SeatNumbers:      []string{"S", "D"},
		PassengerName:    "Asha Rao",
		PassengerPhone:   "+91-9000000001",
		TotalAmountCents: 120000,
		PaymentMethod:    "upi",
		PaymentStatus:    "success",
		BookingStatus:    "confirmed",
		CreatedAt:        pgconv.TimeToPgtype(viewNow),
		UpdatedAt:        pgconv.TimeToPgtype(viewNow),
		DepartureTime:    pgconv.TimeToPgtype(viewNow.Add(36 * time.Hour)),
		TicketNumber:     pgtype.Text{String: "TKT-20261101-0a1b2c3d", Valid: true},
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: view mapped",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(viewRow(id, userID), nil)
			},
		},
		{
			name: "error: not found",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewByIDRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewByIDRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries, nil)

			view, err := store.FindByID(ctx, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, userID, view.UserID)
			assert.Equal(t, "2026-11-02", view.JourneyDate)
			assert.Equal(t, []string{"S", "D"}, view.SeatNumbers)
			assert.Equal(t, "TKT-20261101-0a1b2c3d", view.TicketNumber)
			assert.Equal(t, viewNow.Add(36*time.Hour), view.DepartureTime)
		})
	}
}

func TestBookingReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, nil)
	userID := uuid.New()

	first := sqlc.ListBookingsByUserRow(viewRow(uuid.New(), userID))
	pending := viewRow(uuid.New(), userID)
	pending.TicketNumber = pgtype.Text{}
	pending.BookingStatus = "pending"
	second := sqlc.ListBookingsByUserRow(pending)

	mockQueries.EXPECT().ListBookingsByUser(ctx, gomock.Any(), sqlc.ListBookingsByUserParams{
		UserID: userID,
		Limit:  20,
		Offset: 40,
	}).Return([]sqlc.ListBookingsByUserRow{first, second}, nil)

	views, err := store.ListByUser(ctx, userID, 20, 40)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID, views[0].ID)
	assert.Empty(t, views[1].TicketNumber)
	assert.Equal(t, "pending", views[1].BookingStatus)

	mockQueries.EXPECT().CountBookingsByUser(ctx, gomock.Any(), userID).Return(int64(42), nil)
	total, err := store.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestBookingReadStore_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, nil)
	userID := uuid.New()
	from := schedule.MustParseJourneyDate("2026-11-01")

	mockQueries.EXPECT().ListUpcomingBookingsByUser(ctx, gomock.Any(), sqlc.ListUpcomingBookingsByUserParams{
		UserID:   userID,
		FromDate: pgconv.JourneyDateToPgtype(from),
	}).Return(nil, errDBConnectionLost)

	_, err := store.ListUpcoming(ctx, userID, from)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
