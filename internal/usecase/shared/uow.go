package shared

import (
	"context"
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ScheduleByID(ctx context.Context, id int64) (*schedule.Schedule, error)
	// BookedSeats returns the subset of seats already claimed by a non-cancelled booking.
	BookedSeats(ctx context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber) ([]schedule.SeatNumber, error)
	// ClaimedSeatCount counts seats held by non-cancelled bookings for the journey.
	ClaimedSeatCount(ctx context.Context, scheduleID int64, date schedule.JourneyDate) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// ClaimSeats returns the seats this booking actually obtained.
	ClaimSeats(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) ([]schedule.SeatNumber, error)
	ReleaseSeats(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	IssueTicket(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, ticketNumber string, issuedAt time.Time) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error
	CompleteDeparted(ctx context.Context, tx sqlc.DBTX, before schedule.JourneyDate, now time.Time) ([]CompletedBooking, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, topic string, aggregateID uuid.UUID, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status OutboxStatus, lastErr string, runAt, now time.Time) error
}
