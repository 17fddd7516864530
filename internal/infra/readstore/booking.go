package readstore

import (
	"context"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.ListBookingsByUserRow, error)
	CountBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ListUpcomingBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByUserParams) ([]sqlc.ListUpcomingBookingsByUserRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(bookingViewRow(row)), nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlc.ListBookingsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(bookingViewRow(row))
	}
	return views, nil
}

func (r *BookingReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by user", err)
	}
	return n, nil
}

func (r *BookingReadStore) ListUpcoming(ctx context.Context, userID uuid.UUID, from schedule.JourneyDate) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListUpcomingBookingsByUser(ctx, r.db, sqlc.ListUpcomingBookingsByUserParams{
		UserID:   userID,
		FromDate: pgconv.JourneyDateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(bookingViewRow(row))
	}
	return views, nil
}

// bookingViewRow is the column set shared by the three view queries; the generated
// row types are identical, so they convert directly.
type bookingViewRow struct {
	ID               uuid.UUID
	BookingReference string
	UserID           uuid.UUID
	ScheduleID       int64
	JourneyDate      pgtype.Date
	NumberOfSeats    int32
	SeatNumbers      []string
	PassengerName    string
	PassengerPhone   string
	PassengerEmail   string
	PickupPoint      string
	DropPoint        string
	SpecialRequests  string
	TotalAmountCents int64
	PaymentMethod    string
	PaymentStatus    string
	BookingStatus    string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	DepartureTime    pgtype.Timestamptz
	TicketNumber     pgtype.Text
}

func toBookingView(row bookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:               row.ID,
		BookingReference: row.BookingReference,
		TicketNumber:     pgconv.StringFromPgtype(row.TicketNumber),
		UserID:           row.UserID,
		ScheduleID:       row.ScheduleID,
		JourneyDate:      pgconv.JourneyDateFromPgtype(row.JourneyDate).String(),
		DepartureTime:    pgconv.TimeFromPgtype(row.DepartureTime),
		NumberOfSeats:    row.NumberOfSeats,
		SeatNumbers:      row.SeatNumbers,
		PassengerName:    row.PassengerName,
		PassengerPhone:   row.PassengerPhone,
		PassengerEmail:   row.PassengerEmail,
		PickupPoint:      row.PickupPoint,
		DropPoint:        row.DropPoint,
		SpecialRequests:  row.SpecialRequests,
		TotalAmountCents: row.TotalAmountCents,
		PaymentMethod:    row.PaymentMethod,
		PaymentStatus:    row.PaymentStatus,
		BookingStatus:    row.BookingStatus,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
