package booking

import (
	"errors"
	"time"

	"bus-seat-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNoSeats               = errors.New("at least one seat is required")
	ErrSeatCountMismatch     = errors.New("number of seats does not match seat numbers")
	ErrDuplicateSeat         = errors.New("seat numbers must be unique")
	ErrNonPositiveAmount     = errors.New("total amount must be greater than zero")
	ErrPassengerRequired     = errors.New("passenger name and phone are required")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrInvalidPaymentStatus  = errors.New("payment status must be success or pending")
	ErrInvalidTransition     = errors.New("booking status does not allow this transition")
	ErrJourneyInPast         = errors.New("cannot cancel a booking for a past journey")
)

type NewBookingParams struct {
	ScheduleID    int64
	JourneyDate   schedule.JourneyDate
	NumberOfSeats int
	Seats         []string
	Passenger     Passenger
	Total         Money
	Payment       Payment
	UserID        uuid.UUID
	SessionID     string
}

type Booking struct {
	id          uuid.UUID
	reference   string
	scheduleID  int64
	journeyDate schedule.JourneyDate
	seats       []schedule.SeatNumber
	passenger   Passenger
	total       Money
	payment     Payment
	status      Status
	userID      uuid.UUID
	sessionID   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	if len(p.Seats) == 0 {
		return nil, ErrNoSeats
	}
	if p.NumberOfSeats != len(p.Seats) {
		return nil, ErrSeatCountMismatch
	}
	seats, err := schedule.NewSeatNumbers(p.Seats)
	if err != nil {
		return nil, err
	}
	if len(seats) != len(p.Seats) {
		return nil, ErrDuplicateSeat
	}
	if p.ScheduleID <= 0 {
		return nil, schedule.ErrInvalidScheduleID
	}
	if p.JourneyDate.IsZero() {
		return nil, schedule.ErrInvalidJourneyDate
	}
	if p.Total.Cents() <= 0 {
		return nil, ErrNonPositiveAmount
	}

	status := StatusPending
	if p.Payment.Settled() {
		status = StatusConfirmed
	}

	return &Booking{
		id:          uuid.New(),
		reference:   NewReference(now),
		scheduleID:  p.ScheduleID,
		journeyDate: p.JourneyDate,
		seats:       seats,
		passenger:   p.Passenger,
		total:       p.Total,
		payment:     p.Payment,
		status:      status,
		userID:      p.UserID,
		sessionID:   p.SessionID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	scheduleID int64,
	journeyDate schedule.JourneyDate,
	seats []schedule.SeatNumber,
	passenger Passenger,
	total Money,
	payment Payment,
	status Status,
	userID uuid.UUID,
	sessionID string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		reference:   reference,
		scheduleID:  scheduleID,
		journeyDate: journeyDate,
		seats:       seats,
		passenger:   passenger,
		total:       total,
		payment:     payment,
		status:      status,
		userID:      userID,
		sessionID:   sessionID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm settles payment on a pending booking.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.payment.Status = PaymentSuccess
	b.updatedAt = now
	return nil
}

// Cancel is allowed for pending and confirmed bookings whose journey is today or later.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if b.journeyDate.Before(schedule.JourneyDateOf(now)) {
		return ErrJourneyInPast
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                     { return b.id }
func (b *Booking) Reference() string                 { return b.reference }
func (b *Booking) ScheduleID() int64                 { return b.scheduleID }
func (b *Booking) JourneyDate() schedule.JourneyDate { return b.journeyDate }
func (b *Booking) Seats() []schedule.SeatNumber      { return b.seats }
func (b *Booking) NumberOfSeats() int                { return len(b.seats) }
func (b *Booking) Passenger() Passenger              { return b.passenger }
func (b *Booking) Total() Money                      { return b.total }
func (b *Booking) Payment() Payment                  { return b.payment }
func (b *Booking) Status() Status                    { return b.status }
func (b *Booking) UserID() uuid.UUID                 { return b.userID }
func (b *Booking) SessionID() string                 { return b.sessionID }
func (b *Booking) CreatedAt() time.Time              { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time              { return b.updatedAt }
