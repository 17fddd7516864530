//go:build e2e

package seatlock_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	reqdto "bus-seat-booking/internal/handler/dto/request"
	resdto "bus-seat-booking/internal/handler/dto/response"
	"bus-seat-booking/internal/pkg/config"
	"bus-seat-booking/tests/common/builder"
	"bus-seat-booking/tests/common/dbtest"
	"bus-seat-booking/tests/common/httptest"
	"bus-seat-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SeatLockE2ESuite runs against whichever lease backend Configure selects.
type SeatLockE2ESuite struct {
	e2e.SharedSuite
}

func TestSeatLockE2E_Postgres(t *testing.T) {
	suite.Run(t, &SeatLockE2ESuite{SharedSuite: e2e.SharedSuite{
		Configure: func(cfg *config.Config) { cfg.Lease.Backend = "postgres" },
	}})
}

func TestSeatLockE2E_Redis(t *testing.T) {
	suite.Run(t, &SeatLockE2ESuite{SharedSuite: e2e.SharedSuite{
		Configure: func(cfg *config.Config) { cfg.Lease.Backend = "redis" },
	}})
}

func TestSeatLockE2E_RateLimited(t *testing.T) {
	suite.Run(t, &RateLimitE2ESuite{SharedSuite: e2e.SharedSuite{
		Configure: func(cfg *config.Config) {
			cfg.RateLimit.Enabled = true
			cfg.RateLimit.Capacity = 2
			cfg.RateLimit.RefillTokens = 1
			cfg.RateLimit.RefillInterval = time.Minute
		},
	}})
}

// Redis state survives ResetDB, so every test locks on its own date.
func (s *SeatLockE2ESuite) lockRequest(date, session string, seats ...string) reqdto.LockSeatsRequest {
	return builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.ScheduleID = dbtest.SeededScheduleID
		b.JourneyDate = date
		b.SessionID = session
	}).BuildLockRequestDTO(seats...)
}

func (s *SeatLockE2ESuite) lock(token string, req reqdto.LockSeatsRequest) resdto.LockSeatsResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock", req, token)
	var body resdto.LockSeatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *SeatLockE2ESuite) check(token, date string) resdto.CheckLocksResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("/api/seat-locks/check?scheduleId=%d&journeyDate=%s", dbtest.SeededScheduleID, date), nil, token)
	var body resdto.CheckLocksResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return body
}

func (s *SeatLockE2ESuite) TestLockLifecycle() {
	_, tokenA := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, tokenB := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(10)

	first := s.lock(tokenA, s.lockRequest(date, "sess-a", "A1", "A2"))
	s.Equal("sess-a", first.SessionID)
	s.ElementsMatch([]string{"A1", "A2"}, first.LockedSeats)
	s.Empty(first.UnavailableSeats)
	s.Equal(int64(lease.TTL/time.Second), first.ExpiresInSeconds)

	s.Run("other session is denied with the remaining time", func() {
		res := s.lock(tokenB, s.lockRequest(date, "sess-b", "A2", "A3"))
		s.Equal([]string{"A3"}, res.LockedSeats)
		s.Require().Len(res.UnavailableSeats, 1)
		s.Equal("A2", res.UnavailableSeats[0].SeatNumber)
		s.Equal("locked_by_other", res.UnavailableSeats[0].Reason)
		s.Greater(res.UnavailableSeats[0].SecondsRemaining, int64(0))
		s.LessOrEqual(res.UnavailableSeats[0].SecondsRemaining, int64(lease.TTL/time.Second))
	})

	s.Run("same session renews", func() {
		res := s.lock(tokenA, s.lockRequest(date, "sess-a", "A1"))
		s.Equal([]string{"A1"}, res.LockedSeats)
		s.False(res.ExpiresAt.Before(first.ExpiresAt))
	})

	s.Run("check lists live locks sorted by seat", func() {
		locks := s.check(tokenA, date)
		s.Equal(3, locks.TotalLocked)
		seats := make([]string, len(locks.Locks))
		for i, l := range locks.Locks {
			seats[i] = l.SeatNumber
		}
		s.Equal([]string{"A1", "A2", "A3"}, seats)
	})

	s.Run("unlock only touches the caller's session", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/unlock", reqdto.UnlockSeatsRequest{
			ScheduleID:  dbtest.SeededScheduleID,
			JourneyDate: date,
			SeatNumbers: []string{"A1", "A2", "A3"},
			SessionID:   "sess-a",
		}, tokenA)
		var body resdto.UnlockSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body.UnlockedCount)
		s.Equal(1, s.check(tokenA, date).TotalLocked)
	})

	s.Run("released seat is free for another session", func() {
		res := s.lock(tokenB, s.lockRequest(date, "sess-b", "A1"))
		s.Equal([]string{"A1"}, res.LockedSeats)
	})
}

func (s *SeatLockE2ESuite) TestLockGeneratesSessionWhenAbsent() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	res := s.lock(token, s.lockRequest(e2e.JourneyDate(11), "", "B1"))
	_, err := uuid.Parse(res.SessionID)
	s.NoError(err)
}

func (s *SeatLockE2ESuite) TestBookedSeatIsNeverLocked() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(12)

	booking := builder.NewBookingBuilder().
		WithScheduleID(dbtest.SeededScheduleID).
		WithJourneyDate(date).
		WithSeats("C1").
		WithSessionID("").
		BuildCreateRequestDTO()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create", booking, token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	res := s.lock(token, s.lockRequest(date, "sess-c", "C1", "C2"))
	s.Equal([]string{"C2"}, res.LockedSeats)
	s.Require().Len(res.UnavailableSeats, 1)
	s.Equal("already_booked", res.UnavailableSeats[0].Reason)
}

func (s *SeatLockE2ESuite) TestConcurrentLocksOnOneSeat() {
	const contenders = 12
	date := e2e.JourneyDate(13)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
	)
	for i := 0; i < contenders; i++ {
		_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
		session := fmt.Sprintf("sess-%02d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock",
				s.lockRequest(date, session, "D1"), token)
			var body resdto.LockSeatsResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			if len(body.LockedSeats) == 1 {
				mu.Lock()
				winners = append(winners, session)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Len(winners, 1)
	locks := s.check(s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleViewer), date)
	s.Require().Equal(1, locks.TotalLocked)
	s.Equal(winners[0], locks.Locks[0].SessionID)
}

func (s *SeatLockE2ESuite) TestExpiredLocksAreIgnoredAndSwept() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, operatorToken := s.JWT.NewUser(s.T(), user.RoleOperator)
	date := e2e.JourneyDate(14)

	// plant an already expired lease straight in the store
	stale := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.JourneyDate = date
		b.Seat = "E1"
		b.SessionID = "sess-gone"
		b.TTL = time.Second
	}).BuildDomain(time.Now().Add(-time.Minute))
	_, _, err := s.Leases.Acquire(s.T().Context(), stale, stale.LockedAt)
	s.Require().NoError(err)

	s.Zero(s.check(token, date).TotalLocked)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/seat-locks/cleanup", nil, token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/seat-locks/cleanup", nil, operatorToken)
	var body resdto.CleanupResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

	live, err := s.Leases.ListLive(s.T().Context(), dbtest.SeededScheduleID, schedule.MustParseJourneyDate(date), time.Now())
	s.Require().NoError(err)
	s.Empty(live)

	res := s.lock(token, s.lockRequest(date, "sess-new", "E1"))
	s.Equal([]string{"E1"}, res.LockedSeats)
}

func (s *SeatLockE2ESuite) TestUnlockDoesNotCountExpiredLocks() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(16)

	stale := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.JourneyDate = date
		b.Seat = "G1"
		b.SessionID = "sess-g"
	}).BuildDomain(time.Now().Add(-2 * lease.TTL))
	_, _, err := s.Leases.Acquire(s.T().Context(), stale, stale.LockedAt)
	s.Require().NoError(err)
	s.lock(token, s.lockRequest(date, "sess-g", "G2"))

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/unlock", reqdto.UnlockSeatsRequest{
		ScheduleID:  dbtest.SeededScheduleID,
		JourneyDate: date,
		SeatNumbers: []string{"G1", "G2"},
		SessionID:   "sess-g",
	}, token)
	var body resdto.UnlockSeatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(1), body.UnlockedCount)
	s.Zero(s.check(token, date).TotalLocked)
}

// ================================================================================
// rate limiting
// ================================================================================

type RateLimitE2ESuite struct {
	e2e.SharedSuite
}

func (s *RateLimitE2ESuite) TestLockIsThrottledPerUser() {
	_, tokenA := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, tokenB := s.JWT.NewUser(s.T(), user.RoleViewer)
	req := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.JourneyDate = e2e.JourneyDate(15)
	}).BuildLockRequestDTO("F1")

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock", req, tokenA)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock", req, tokenA)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many requests")
	httptest.AssertHeaders(s.T(), rec, map[string]string{"X-RateLimit-Limit": "2", "X-RateLimit-Remaining": "0"})
	s.NotEmpty(rec.Header().Get("Retry-After"))

	// buckets are per user
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock",
		builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
			b.JourneyDate = e2e.JourneyDate(15)
			b.SessionID = "sess-other"
		}).BuildLockRequestDTO("F2"), tokenB)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}
