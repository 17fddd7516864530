package request

import (
	"bus-seat-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ScheduleID      int64    `json:"scheduleId" binding:"required,gt=0"`
	JourneyDate     string   `json:"journeyDate" binding:"required,journeydate"`
	NumberOfSeats   int      `json:"numberOfSeats" binding:"required,min=1,max=60"`
	SeatNumbers     []string `json:"seatNumbers" binding:"required,min=1,max=60,dive,seatnumber"`
	SessionID       string   `json:"sessionId" binding:"omitempty,max=128"`
	PassengerName   string   `json:"passengerName" binding:"required,max=120"`
	PassengerPhone  string   `json:"passengerPhone" binding:"required,max=32"`
	PassengerEmail  string   `json:"passengerEmail" binding:"omitempty,email"`
	PickupPoint     string   `json:"pickupPoint" binding:"max=200"`
	DropPoint       string   `json:"dropPoint" binding:"max=200"`
	SpecialRequests string   `json:"specialRequests" binding:"max=500"`
	TotalAmount     float64  `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod   string   `json:"paymentMethod" binding:"required,max=40"`
	PaymentStatus   string   `json:"paymentStatus" binding:"required,oneof=success pending"`
}

func (r CreateBookingRequest) ToCommand() commands.CommitBookingRequest {
	return commands.CommitBookingRequest{
		ScheduleID:      r.ScheduleID,
		JourneyDate:     r.JourneyDate,
		NumberOfSeats:   r.NumberOfSeats,
		SeatNumbers:     r.SeatNumbers,
		SessionID:       r.SessionID,
		PassengerName:   r.PassengerName,
		PassengerPhone:  r.PassengerPhone,
		PassengerEmail:  r.PassengerEmail,
		PickupPoint:     r.PickupPoint,
		DropPoint:       r.DropPoint,
		SpecialRequests: r.SpecialRequests,
		TotalAmount:     r.TotalAmount,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   r.PaymentStatus,
	}
}

type ListBookingsQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
