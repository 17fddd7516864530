//go:build unit || e2e

package builder

import (
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	reqdto "bus-seat-booking/internal/handler/dto/request"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LeaseBuilder struct {
	ScheduleID  int64
	JourneyDate string
	Seat        string
	SessionID   string
	UserID      uuid.UUID
	TTL         time.Duration
}

func NewLeaseBuilder() *LeaseBuilder {
	return &LeaseBuilder{
		ScheduleID:  1,
		JourneyDate: "2026-11-02",
		Seat:        "A1",
		SessionID:   "sess-1",
		UserID:      uuid.New(),
		TTL:         lease.TTL,
	}
}

func (l *LeaseBuilder) With(mutate func(*LeaseBuilder)) *LeaseBuilder {
	mutate(l)
	return l
}

func (l *LeaseBuilder) Key() lease.Key {
	return lease.Key{
		ScheduleID:  l.ScheduleID,
		JourneyDate: schedule.MustParseJourneyDate(l.JourneyDate),
		Seat:        schedule.SeatNumber(l.Seat),
	}
}

func (l *LeaseBuilder) BuildDomain(now time.Time) lease.Lease {
	return lease.New(l.Key(), l.SessionID, l.UserID, now, l.TTL)
}

func (l *LeaseBuilder) BuildInfra(now time.Time) sqlc.SeatLeases {
	d := l.BuildDomain(now)
	return sqlc.SeatLeases{
		ScheduleID:  d.ScheduleID,
		JourneyDate: pgconv.JourneyDateToPgtype(d.JourneyDate),
		SeatNumber:  d.Seat.String(),
		SessionID:   d.SessionID,
		UserID:      pgconv.UUIDToPgtype(d.UserID),
		LockedAt:    pgconv.TimeToPgtype(d.LockedAt),
		ExpiresAt:   pgconv.TimeToPgtype(d.ExpiresAt),
	}
}

func (l *LeaseBuilder) BuildLockRequestDTO(seats ...string) reqdto.LockSeatsRequest {
	if len(seats) == 0 {
		seats = []string{l.Seat}
	}
	return reqdto.LockSeatsRequest{
		ScheduleID:  l.ScheduleID,
		JourneyDate: l.JourneyDate,
		SeatNumbers: seats,
		SessionID:   l.SessionID,
	}
}
