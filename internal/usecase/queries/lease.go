package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/shared"
)

type LeaseView struct {
	SeatNumber       string    `json:"seatNumber"`
	SessionID        string    `json:"sessionId"`
	LockedAt         time.Time `json:"lockedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	SecondsRemaining int64     `json:"secondsRemaining"`
}

type LeaseQueries interface {
	// Inspect returns the live leases of one schedule run, sorted by seat number.
	Inspect(ctx context.Context, scheduleID int64, journeyDate string) ([]LeaseView, error)
}

type leaseQueriesImpl struct {
	store shared.LeaseStore
	clock clock.Clock
}

func NewLeaseQueries(store shared.LeaseStore, clk clock.Clock) LeaseQueries {
	return &leaseQueriesImpl{store: store, clock: clk}
}

func (q *leaseQueriesImpl) Inspect(ctx context.Context, scheduleID int64, journeyDate string) ([]LeaseView, error) {
	date, err := schedule.ParseJourneyDate(journeyDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if scheduleID <= 0 {
		return nil, errs.Mark(schedule.ErrInvalidScheduleID, errs.ErrValidation)
	}

	now := q.clock.Now()
	scope := &shared.SweepScope{ScheduleID: scheduleID, JourneyDate: date}
	if n, err := q.store.SweepExpired(ctx, scope, now); err != nil {
		slog.Warn("lazy lease sweep failed", "schedule_id", scheduleID, "journey_date", date.String(), "error", err.Error())
	} else if n > 0 {
		slog.Debug("swept expired leases", "schedule_id", scheduleID, "count", n)
	}

	leases, err := q.store.ListLive(ctx, scheduleID, date, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	views := make([]LeaseView, 0, len(leases))
	for _, l := range leases {
		if !l.IsLive(now) {
			continue
		}
		views = append(views, LeaseView{
			SeatNumber:       l.Seat.String(),
			SessionID:        l.SessionID,
			LockedAt:         l.LockedAt,
			ExpiresAt:        l.ExpiresAt,
			SecondsRemaining: l.SecondsRemaining(now),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].SeatNumber < views[j].SeatNumber })
	return views, nil
}
