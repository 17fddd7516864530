package converter

import (
	"math"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	n := b.NumberOfSeats()
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	p := b.Passenger()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		BookingReference: b.Reference(),
		UserID:           b.UserID(),
		SessionID:        b.SessionID(),
		ScheduleID:       b.ScheduleID(),
		JourneyDate:      pgconv.JourneyDateToPgtype(b.JourneyDate()),
		NumberOfSeats:    int32(n), // #nosec G115 -- clamped above
		SeatNumbers:      schedule.SeatStrings(b.Seats()),
		PassengerName:    p.Name,
		PassengerPhone:   p.Phone,
		PassengerEmail:   p.Email,
		PickupPoint:      p.PickupPoint,
		DropPoint:        p.DropPoint,
		SpecialRequests:  p.SpecialRequests,
		TotalAmountCents: b.Total().Cents(),
		PaymentMethod:    b.Payment().Method,
		PaymentStatus:    b.Payment().Status.String(),
		BookingStatus:    b.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	seats := make([]schedule.SeatNumber, len(row.SeatNumbers))
	for i, s := range row.SeatNumbers {
		seats[i] = schedule.SeatNumber(s)
	}
	return booking.ReconstructBooking(
		row.ID,
		row.BookingReference,
		row.ScheduleID,
		pgconv.JourneyDateFromPgtype(row.JourneyDate),
		seats,
		booking.Passenger{
			Name:            row.PassengerName,
			Phone:           row.PassengerPhone,
			Email:           row.PassengerEmail,
			PickupPoint:     row.PickupPoint,
			DropPoint:       row.DropPoint,
			SpecialRequests: row.SpecialRequests,
		},
		booking.NewMoneyFromCents(row.TotalAmountCents),
		booking.Payment{
			Method: row.PaymentMethod,
			Status: booking.PaymentStatus(row.PaymentStatus),
		},
		booking.Status(row.BookingStatus),
		row.UserID,
		row.SessionID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
