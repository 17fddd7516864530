package shared

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "pending"
	OutboxProcessing OutboxStatus = "processing"
	OutboxSent       OutboxStatus = "sent"
	OutboxDead       OutboxStatus = "dead"
)

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
	TopicBookingCompleted = "booking.completed"
)

type OutboxEvent struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int32
	RunAt       time.Time
}

type CompletedBooking struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// BookingEvent is the payload written to the outbox for every booking transition.
type BookingEvent struct {
	BookingID        uuid.UUID `json:"bookingId"`
	BookingReference string    `json:"bookingReference,omitempty"`
	UserID           uuid.UUID `json:"userId"`
	ScheduleID       int64     `json:"scheduleId,omitempty"`
	JourneyDate      string    `json:"journeyDate,omitempty"`
	SeatNumbers      []string  `json:"seatNumbers,omitempty"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurredAt"`
}
