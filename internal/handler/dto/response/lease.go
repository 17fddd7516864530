package response

import (
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/usecase/queries"
)

type UnavailableSeat struct {
	SeatNumber       string `json:"seatNumber"`
	Reason           string `json:"reason"`
	Message          string `json:"message"`
	SecondsRemaining int64  `json:"secondsRemaining,omitempty"`
}

type LockSeatsResponse struct {
	SessionID        string            `json:"sessionId"`
	LockedSeats      []string          `json:"lockedSeats"`
	UnavailableSeats []UnavailableSeat `json:"unavailableSeats"`
	ExpiresInSeconds int64             `json:"expiresInSeconds"`
	ExpiresAt        time.Time         `json:"expiresAt"`
}

func FromAcquireResult(r *lease.AcquireResult, ttl time.Duration) *LockSeatsResponse {
	unavailable := make([]UnavailableSeat, len(r.Denied))
	for i, d := range r.Denied {
		unavailable[i] = UnavailableSeat{
			SeatNumber:       d.Seat.String(),
			Reason:           string(d.Reason),
			Message:          d.Message,
			SecondsRemaining: d.SecondsRemaining,
		}
	}
	locked := schedule.SeatStrings(r.Granted)
	return &LockSeatsResponse{
		SessionID:        r.SessionID,
		LockedSeats:      locked,
		UnavailableSeats: unavailable,
		ExpiresInSeconds: int64(ttl / time.Second),
		ExpiresAt:        r.ExpiresAt,
	}
}

type UnlockSeatsResponse struct {
	UnlockedCount int64 `json:"unlockedCount"`
}

type LockResponse struct {
	SeatNumber       string    `json:"seatNumber"`
	SessionID        string    `json:"sessionId"`
	LockedAt         time.Time `json:"lockedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	SecondsRemaining int64     `json:"secondsRemaining"`
}

type CheckLocksResponse struct {
	Locks       []LockResponse `json:"locks"`
	TotalLocked int            `json:"totalLocked"`
}

func FromLeaseViews(views []queries.LeaseView) *CheckLocksResponse {
	locks := make([]LockResponse, len(views))
	for i, v := range views {
		locks[i] = LockResponse{
			SeatNumber:       v.SeatNumber,
			SessionID:        v.SessionID,
			LockedAt:         v.LockedAt,
			ExpiresAt:        v.ExpiresAt,
			SecondsRemaining: v.SecondsRemaining,
		}
	}
	return &CheckLocksResponse{Locks: locks, TotalLocked: len(locks)}
}

type CleanupResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
