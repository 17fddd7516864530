//go:build unit || e2e

package builder

import (
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	reqdto "bus-seat-booking/internal/handler/dto/request"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	SessionID       string
	ScheduleID      int64
	JourneyDate     string
	NumberOfSeats   int
	SeatNumbers     []string
	PassengerName   string
	PassengerPhone  string
	PassengerEmail  string
	PickupPoint     string
	DropPoint       string
	SpecialRequests string
	TotalAmount     float64
	PaymentMethod   string
	PaymentStatus   booking.PaymentStatus
	DepartureTime   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:         uuid.New(),
		SessionID:      "sess-builder",
		ScheduleID:     1,
		JourneyDate:    "2026-11-02",
		NumberOfSeats:  2,
		SeatNumbers:    []string{"A1", "A2"},
		PassengerName:  "Asha Rao",
		PassengerPhone: "+91-9000000001",
		PassengerEmail: "asha@example.com",
		PickupPoint:    "Majestic",
		DropPoint:      "Mysuru",
		TotalAmount:    1200,
		PaymentMethod:  "upi",
		PaymentStatus:  booking.PaymentSuccess,
		DepartureTime:  time.Date(2026, 11, 2, 22, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// WithSeats keeps NumberOfSeats in step with the seat list.
func (b *BookingBuilder) WithSeats(seats ...string) *BookingBuilder {
	b.SeatNumbers = seats
	b.NumberOfSeats = len(seats)
	return b
}

func (b *BookingBuilder) WithNumberOfSeats(n int) *BookingBuilder {
	b.NumberOfSeats = n
	return b
}

func (b *BookingBuilder) WithScheduleID(id int64) *BookingBuilder {
	b.ScheduleID = id
	return b
}

func (b *BookingBuilder) WithJourneyDate(date string) *BookingBuilder {
	b.JourneyDate = date
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status booking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithTotal(amount float64) *BookingBuilder {
	b.TotalAmount = amount
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithSessionID(id string) *BookingBuilder {
	b.SessionID = id
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain(now time.Time) (*booking.Booking, error) {
	date, err := schedule.ParseJourneyDate(b.JourneyDate)
	if err != nil {
		return nil, err
	}
	passenger, err := booking.NewPassenger(b.PassengerName, b.PassengerPhone, b.PassengerEmail, b.PickupPoint, b.DropPoint, b.SpecialRequests)
	if err != nil {
		return nil, err
	}
	payment, err := booking.NewPayment(b.PaymentMethod, b.PaymentStatus)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoneyFromAmount(b.TotalAmount)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewBookingParams{
		ScheduleID:    b.ScheduleID,
		JourneyDate:   date,
		NumberOfSeats: b.NumberOfSeats,
		Seats:         b.SeatNumbers,
		Passenger:     passenger,
		Total:         total,
		Payment:       payment,
		UserID:        b.UserID,
		SessionID:     b.SessionID,
	}, now)
}

func (b *BookingBuilder) BuildInfra(now time.Time) sqlc.Bookings {
	status := booking.StatusPending
	if b.PaymentStatus == booking.PaymentSuccess {
		status = booking.StatusConfirmed
	}
	return sqlc.Bookings{
		ID:               uuid.New(),
		BookingReference: booking.NewReference(now),
		UserID:           b.UserID,
		SessionID:        b.SessionID,
		ScheduleID:       b.ScheduleID,
		JourneyDate:      pgconv.JourneyDateToPgtype(schedule.MustParseJourneyDate(b.JourneyDate)),
		NumberOfSeats:    int32(b.NumberOfSeats), // #nosec G115 -- test data
		SeatNumbers:      b.SeatNumbers,
		PassengerName:    b.PassengerName,
		PassengerPhone:   b.PassengerPhone,
		PassengerEmail:   b.PassengerEmail,
		PickupPoint:      b.PickupPoint,
		DropPoint:        b.DropPoint,
		SpecialRequests:  b.SpecialRequests,
		TotalAmountCents: int64(b.TotalAmount * 100),
		PaymentMethod:    b.PaymentMethod,
		PaymentStatus:    b.PaymentStatus.String(),
		BookingStatus:    status.String(),
		CreatedAt:        pgconv.TimeToPgtype(now),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ScheduleID:      b.ScheduleID,
		JourneyDate:     b.JourneyDate,
		NumberOfSeats:   b.NumberOfSeats,
		SeatNumbers:     b.SeatNumbers,
		SessionID:       b.SessionID,
		PassengerName:   b.PassengerName,
		PassengerPhone:  b.PassengerPhone,
		PassengerEmail:  b.PassengerEmail,
		PickupPoint:     b.PickupPoint,
		DropPoint:       b.DropPoint,
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		PaymentMethod:   b.PaymentMethod,
		PaymentStatus:   b.PaymentStatus.String(),
	}
}

func (b *BookingBuilder) BuildCommand() commands.CommitBookingRequest {
	return b.BuildCreateRequestDTO().ToCommand()
}

func (b *BookingBuilder) BuildView(now time.Time) *queries.BookingView {
	status := booking.StatusPending
	if b.PaymentStatus == booking.PaymentSuccess {
		status = booking.StatusConfirmed
	}
	return &queries.BookingView{
		ID:               uuid.New(),
		BookingReference: booking.NewReference(now),
		TicketNumber:     booking.NewTicketNumber(now),
		UserID:           b.UserID,
		ScheduleID:       b.ScheduleID,
		JourneyDate:      b.JourneyDate,
		DepartureTime:    b.DepartureTime,
		NumberOfSeats:    int32(b.NumberOfSeats), // #nosec G115 -- test data
		SeatNumbers:      b.SeatNumbers,
		PassengerName:    b.PassengerName,
		PassengerPhone:   b.PassengerPhone,
		PassengerEmail:   b.PassengerEmail,
		PickupPoint:      b.PickupPoint,
		DropPoint:        b.DropPoint,
		SpecialRequests:  b.SpecialRequests,
		TotalAmountCents: int64(b.TotalAmount * 100),
		PaymentMethod:    b.PaymentMethod,
		PaymentStatus:    b.PaymentStatus.String(),
		BookingStatus:    status.String(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
