package repository

import (
	"context"
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/infra/repository/converter"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	ClaimBookingSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimBookingSeatsParams) ([]string, error)
	ReleaseBookingSeats(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	CompleteDepartedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteDepartedBookingsParams) ([]sqlc.CompleteDepartedBookingsRow, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) ClaimSeats(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) ([]schedule.SeatNumber, error) {
	claimed, err := r.queries.ClaimBookingSeats(ctx, tx, sqlc.ClaimBookingSeatsParams{
		BookingID:   b.ID(),
		ScheduleID:  b.ScheduleID(),
		JourneyDate: pgconv.JourneyDateToPgtype(b.JourneyDate()),
		SeatNumbers: schedule.SeatStrings(b.Seats()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking seats", err)
	}
	seats := make([]schedule.SeatNumber, len(claimed))
	for i, s := range claimed {
		seats[i] = schedule.SeatNumber(s)
	}
	return seats, nil
}

func (r *BookingRepository) ReleaseSeats(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int64, error) {
	n, err := r.queries.ReleaseBookingSeats(ctx, tx, bookingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release booking seats", err)
	}
	return n, nil
}

func (r *BookingRepository) IssueTicket(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, ticketNumber string, issuedAt time.Time) error {
	err := r.queries.CreateTicket(ctx, tx, sqlc.CreateTicketParams{
		ID:           uuid.New(),
		BookingID:    bookingID,
		TicketNumber: ticketNumber,
		IssuedAt:     pgconv.TimeToPgtype(issuedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to issue ticket", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return converter.BookingFromRow(row), nil
}

// UpdateStatus persists b's status only if the stored status still equals expected.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		BookingStatus:  b.Status().String(),
		PaymentStatus:  b.Payment().Status.String(),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:             b.ID(),
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CompleteDeparted(ctx context.Context, tx sqlc.DBTX, before schedule.JourneyDate, now time.Time) ([]shared.CompletedBooking, error) {
	rows, err := r.queries.CompleteDepartedBookings(ctx, tx, sqlc.CompleteDepartedBookingsParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		Before:    pgconv.JourneyDateToPgtype(before),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete departed bookings", err)
	}
	done := make([]shared.CompletedBooking, len(rows))
	for i, row := range rows {
		done[i] = shared.CompletedBooking{ID: row.ID, UserID: row.UserID}
	}
	return done, nil
}
