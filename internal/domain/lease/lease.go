package lease

import (
	"math"
	"time"

	"bus-seat-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// TTL is the lifetime of a seat lease. Renewal restamps both lockedAt and expiresAt.
const TTL = 10 * time.Minute

type Key struct {
	ScheduleID  int64
	JourneyDate schedule.JourneyDate
	Seat        schedule.SeatNumber
}

type Lease struct {
	Key
	SessionID string
	UserID    uuid.UUID
	LockedAt  time.Time
	ExpiresAt time.Time
}

func New(key Key, sessionID string, userID uuid.UUID, now time.Time, ttl time.Duration) Lease {
	if ttl <= 0 {
		ttl = TTL
	}
	return Lease{
		Key:       key,
		SessionID: sessionID,
		UserID:    userID,
		LockedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsLive is the only test of authority. A stored lease past its expiry counts as absent.
func (l Lease) IsLive(now time.Time) bool {
	return l.ExpiresAt.After(now)
}

func (l Lease) HeldBy(sessionID string) bool {
	return l.SessionID == sessionID
}

// SecondsRemaining rounds up, so a live lease never reports zero.
func (l Lease) SecondsRemaining(now time.Time) int64 {
	if !l.IsLive(now) {
		return 0
	}
	secs := int64(math.Ceil(l.ExpiresAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func NewSessionID() string {
	return uuid.NewString()
}
