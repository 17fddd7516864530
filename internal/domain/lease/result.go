package lease

import (
	"fmt"
	"time"

	"bus-seat-booking/internal/domain/schedule"
)

// Outcome of one atomic conditional write on a lease key.
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeRenewed
	OutcomeHeldByOther
)

func (o Outcome) Granted() bool {
	return o == OutcomeCreated || o == OutcomeRenewed
}

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeRenewed:
		return "renewed"
	case OutcomeHeldByOther:
		return "held_by_other"
	default:
		return "unknown"
	}
}

type DenialReason string

const (
	ReasonAlreadyBooked DenialReason = "already_booked"
	ReasonLockedByOther DenialReason = "locked_by_other"
	ReasonError         DenialReason = "error"
)

type Denial struct {
	Seat             schedule.SeatNumber
	Reason           DenialReason
	Message          string
	SecondsRemaining int64
}

func AlreadyBooked(seat schedule.SeatNumber) Denial {
	return Denial{Seat: seat, Reason: ReasonAlreadyBooked, Message: "Seat is already booked"}
}

func LockedByOther(seat schedule.SeatNumber, holder Lease, now time.Time) Denial {
	return Denial{
		Seat:             seat,
		Reason:           ReasonLockedByOther,
		Message:          fmt.Sprintf("Seat is locked by another user (expires: %s)", holder.ExpiresAt.UTC().Format(time.RFC3339)),
		SecondsRemaining: holder.SecondsRemaining(now),
	}
}

func StorageFailure(seat schedule.SeatNumber) Denial {
	return Denial{Seat: seat, Reason: ReasonError, Message: "Failed to lock seat, please retry"}
}

// AcquireResult partitions the distinct requested seats: every seat is in exactly one of Granted or Denied.
type AcquireResult struct {
	SessionID string
	Granted   []schedule.SeatNumber
	Denied    []Denial
	ExpiresAt time.Time
}

func (r *AcquireResult) Grant(seat schedule.SeatNumber) {
	r.Granted = append(r.Granted, seat)
}

func (r *AcquireResult) Deny(d Denial) {
	r.Denied = append(r.Denied, d)
}

func (r AcquireResult) Total() int {
	return len(r.Granted) + len(r.Denied)
}
