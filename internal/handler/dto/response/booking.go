package response

import (
	"time"

	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingReference string    `json:"bookingReference"`
	TicketNumber     string    `json:"ticketNumber,omitempty"`
	UserID           uuid.UUID `json:"userId"`
	ScheduleID       int64     `json:"scheduleId"`
	JourneyDate      string    `json:"journeyDate"`
	DepartureTime    time.Time `json:"departureTime"`
	NumberOfSeats    int32     `json:"numberOfSeats"`
	SeatNumbers      []string  `json:"seatNumbers"`
	PassengerName    string    `json:"passengerName"`
	PassengerPhone   string    `json:"passengerPhone"`
	PassengerEmail   string    `json:"passengerEmail,omitempty"`
	PickupPoint      string    `json:"pickupPoint,omitempty"`
	DropPoint        string    `json:"dropPoint,omitempty"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	TotalAmount      float64   `json:"totalAmount"`
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentStatus    string    `json:"paymentStatus"`
	BookingStatus    string    `json:"bookingStatus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	// Same-named fields only; amounts are converted below.
	if err := copier.Copy(&res, v); err != nil {
		return nil
	}
	res.SeatNumbers = append([]string(nil), v.SeatNumbers...)
	res.TotalAmount = float64(v.TotalAmountCents) / 100.0
	return &res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type CreateBookingResponse struct {
	Booking          *BookingResponse `json:"booking"`
	BookingReference string           `json:"bookingReference"`
	TicketNumber     string           `json:"ticketNumber"`
}

func FromCommitResult(r *commands.CommitBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:          FromBookingView(r.Booking),
		BookingReference: r.BookingReference,
		TicketNumber:     r.TicketNumber,
	}
}

type BookingEnvelope struct {
	Booking *BookingResponse `json:"booking"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	Pagination Pagination         `json:"pagination"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	return &BookingListResponse{
		Bookings: FromBookingViews(p.Bookings),
		Pagination: Pagination{
			Total:   p.Total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.HasMore,
		},
	}
}

type UpcomingBookingsResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Count    int                `json:"count"`
}
