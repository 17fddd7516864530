package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/usecase/shared"
)

// Store is a mutex-guarded lease store. It is only correct when a single server
// instance owns all lease traffic; use it for local development and tests.
type Store struct {
	mu     sync.Mutex
	leases map[string]lease.Lease // key: "{scheduleID}|{date}|{seat}"
}

func New() *Store {
	return &Store{
		leases: make(map[string]lease.Lease),
	}
}

var _ shared.LeaseStore = (*Store)(nil)

func slotKey(k lease.Key) string {
	return fmt.Sprintf("%d|%s|%s", k.ScheduleID, k.JourneyDate.String(), k.Seat)
}

func (s *Store) Acquire(_ context.Context, l lease.Lease, now time.Time) (lease.Outcome, *lease.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.leases[slotKey(l.Key)]
	switch {
	case !ok || !existing.IsLive(now):
		s.leases[slotKey(l.Key)] = l
		return lease.OutcomeCreated, nil, nil
	case existing.HeldBy(l.SessionID):
		s.leases[slotKey(l.Key)] = l
		return lease.OutcomeRenewed, nil, nil
	default:
		holder := existing
		return lease.OutcomeHeldByOther, &holder, nil
	}
}

// Release drops the session's leases; expired ones are dropped but not counted.
func (s *Store) Release(_ context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber, sessionID string, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, seat := range seats {
		key := slotKey(lease.Key{ScheduleID: scheduleID, JourneyDate: date, Seat: seat})
		existing, ok := s.leases[key]
		if !ok || !existing.HeldBy(sessionID) {
			continue
		}
		delete(s.leases, key)
		if existing.IsLive(now) {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListLive(_ context.Context, scheduleID int64, date schedule.JourneyDate, now time.Time) ([]lease.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var live []lease.Lease
	for _, l := range s.leases {
		if l.ScheduleID == scheduleID && l.JourneyDate.Equal(date) && l.IsLive(now) {
			live = append(live, l)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].Seat < live[j].Seat })
	return live, nil
}

func (s *Store) SweepExpired(_ context.Context, scope *shared.SweepScope, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, l := range s.leases {
		if scope != nil && (l.ScheduleID != scope.ScheduleID || !l.JourneyDate.Equal(scope.JourneyDate)) {
			continue
		}
		if !l.IsLive(now) {
			delete(s.leases, key)
			n++
		}
	}
	return n, nil
}

// Len counts stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leases)
}
