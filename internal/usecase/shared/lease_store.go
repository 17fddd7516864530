package shared

import (
	"context"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
)

// LeaseStore arbitrates seat leases. Every implementation must make Acquire a single
// atomic conditional write per key and treat leases with ExpiresAt <= now as absent.
type LeaseStore interface {
	// Acquire returns the current holder when the outcome is OutcomeHeldByOther.
	Acquire(ctx context.Context, l lease.Lease, now time.Time) (lease.Outcome, *lease.Lease, error)
	// Release deletes the session's leases on the seats and returns how many of them were still live.
	Release(ctx context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber, sessionID string, now time.Time) (int64, error)
	ListLive(ctx context.Context, scheduleID int64, date schedule.JourneyDate, now time.Time) ([]lease.Lease, error)
	// SweepExpired deletes expired leases; a nil scope sweeps everything.
	SweepExpired(ctx context.Context, scope *SweepScope, now time.Time) (int64, error)
}

type SweepScope struct {
	ScheduleID  int64
	JourneyDate schedule.JourneyDate
}

// EventPublisher delivers outbox events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}
