//go:build e2e

package booking_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/user"
	reqdto "bus-seat-booking/internal/handler/dto/request"
	resdto "bus-seat-booking/internal/handler/dto/response"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/internal/worker"
	"bus-seat-booking/tests/common/builder"
	"bus-seat-booking/tests/common/dbtest"
	"bus-seat-booking/tests/common/httptest"
	"bus-seat-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type BookingE2ESuite struct {
	e2e.SharedSuite
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ESuite))
}

func (s *BookingE2ESuite) createRequest(scheduleID int64, date string, seats ...string) reqdto.CreateBookingRequest {
	return builder.NewBookingBuilder().
		WithScheduleID(scheduleID).
		WithJourneyDate(date).
		WithSeats(seats...).
		WithSessionID("").
		BuildCreateRequestDTO()
}

func (s *BookingE2ESuite) commit(token string, req reqdto.CreateBookingRequest) resdto.CreateBookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create", req, token)
	var body resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

// ================================================================================
// Commit
// ================================================================================

func (s *BookingE2ESuite) TestCommit_Success() {
	userID, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(7)

	body := s.commit(token, s.createRequest(dbtest.SeededScheduleID, date, "A1", "A2"))

	s.Regexp(`^BK\d{8}[A-Z2-9]{6}$`, body.BookingReference)
	s.Regexp(`^TKT-\d{8}-[0-9a-f]{8}$`, body.TicketNumber)
	s.Require().NotNil(body.Booking)
	s.Equal(userID, body.Booking.UserID)
	s.Equal("confirmed", body.Booking.BookingStatus)
	s.Equal(date, body.Booking.JourneyDate)
	s.Equal(1200.0, body.Booking.TotalAmount)
	s.Equal(body.TicketNumber, body.Booking.TicketNumber)

	s.Equal(2, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM booking_seats WHERE booking_id = $1", body.Booking.ID))
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM outbox_events WHERE aggregate_id = $1 AND topic = $2", body.Booking.ID, shared.TopicBookingCreated))
}

func (s *BookingE2ESuite) TestCommit_PendingPayment() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	req := s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(3), "C1")
	req.PaymentStatus = "pending"

	body := s.commit(token, req)
	s.Equal("pending", body.Booking.BookingStatus)
	s.Equal("pending", body.Booking.PaymentStatus)
}

func (s *BookingE2ESuite) TestCommit_SeatConflictReportsContestedSeats() {
	_, tokenA := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, tokenB := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(7)

	s.commit(tokenA, s.createRequest(dbtest.SeededScheduleID, date, "S"))

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create",
		s.createRequest(dbtest.SeededScheduleID, date, "S", "D"), tokenB)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")

	var body struct {
		Detail struct {
			ConflictingSeats []string `json:"conflictingSeats"`
		} `json:"detail"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal([]string{"S"}, body.Detail.ConflictingSeats)

	// the failed attempt left nothing behind, so D is still free
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings"))
	s.commit(tokenB, s.createRequest(dbtest.SeededScheduleID, date, "D"))
}

func (s *BookingE2ESuite) TestCommit_SameSeatOtherDateIsIndependent() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)

	s.commit(token, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(7), "B4"))
	s.commit(token, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(8), "B4"))
}

func (s *BookingE2ESuite) TestCommit_ConcurrentRequestsForOneSeat() {
	const contenders = 8
	date := e2e.JourneyDate(5)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for i := 0; i < contenders; i++ {
		_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create",
				s.createRequest(dbtest.SeededScheduleID, date, "E5"), token)
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}(token)
	}
	wg.Wait()

	s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
	s.Equal(contenders-1, codes[http.StatusConflict], "codes: %v", codes)
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM booking_seats WHERE seat_number = 'E5'"))
}

func (s *BookingE2ESuite) TestCommit_Rejections() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(7)

	cases := []struct {
		name string
		req  reqdto.CreateBookingRequest
		code int
	}{
		{"inactive schedule", s.createRequest(dbtest.SeededInactiveScheduleID, date, "A1"), http.StatusNotFound},
		{"unknown schedule", s.createRequest(999, date, "A1"), http.StatusNotFound},
		{"over capacity", s.createRequest(dbtest.SeededSmallScheduleID, date, "A1", "A2", "A3"), http.StatusBadRequest},
		{"duplicate seat", s.createRequest(dbtest.SeededScheduleID, date, "A1", "A1"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create", tc.req, token)
			s.Equal(tc.code, rec.Code, rec.Body.String())
		})
	}
	s.Zero(dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings"))
}

func (s *BookingE2ESuite) TestCommit_JourneyCapacityAcrossBookings() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(8)

	s.commit(token, s.createRequest(dbtest.SeededSmallScheduleID, date, "A1", "A2"))

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/create",
		s.createRequest(dbtest.SeededSmallScheduleID, date, "Z9"), token)
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	s.Equal(2, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM booking_seats"))

	// another date on the same bus is unaffected
	s.commit(token, s.createRequest(dbtest.SeededSmallScheduleID, e2e.JourneyDate(9), "Z9"))
}

func (s *BookingE2ESuite) TestCommit_ReleasesTheCallersLocks() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(7)

	lock := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.JourneyDate = date
		b.SessionID = "checkout-1"
	}).BuildLockRequestDTO("F1", "F2")
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/seat-locks/lock", lock, token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	req := s.createRequest(dbtest.SeededScheduleID, date, "F1", "F2")
	req.SessionID = "checkout-1"
	s.commit(token, req)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf("/api/seat-locks/check?scheduleId=%d&journeyDate=%s", dbtest.SeededScheduleID, date), nil, token)
	var locks resdto.CheckLocksResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &locks)
	s.Zero(locks.TotalLocked)
}

// ================================================================================
// Cancel / settle / reads
// ================================================================================

func (s *BookingE2ESuite) TestCancel_FreesSeats() {
	_, ownerToken := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, otherToken := s.JWT.NewUser(s.T(), user.RoleViewer)
	date := e2e.JourneyDate(7)

	created := s.commit(ownerToken, s.createRequest(dbtest.SeededScheduleID, date, "G1"))
	cancelURL := "/api/bookings/" + created.Booking.ID.String() + "/cancel"

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, otherToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, ownerToken)
	var body resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("cancelled", body.Booking.BookingStatus)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, ownerToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")

	s.commit(otherToken, s.createRequest(dbtest.SeededScheduleID, date, "G1"))
}

func (s *BookingE2ESuite) TestCancel_PastJourney() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	created := s.commit(token, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(-2), "H1"))

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.Booking.ID.String()+"/cancel", nil, token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
}

func (s *BookingE2ESuite) TestSettlePayment() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, operatorToken := s.JWT.NewUser(s.T(), user.RoleOperator)
	req := s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(4), "J1")
	req.PaymentStatus = "pending"
	created := s.commit(token, req)
	url := "/api/bookings/" + created.Booking.ID.String() + "/settle-payment"

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, operatorToken)
	var body resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("confirmed", body.Booking.BookingStatus)
	s.Equal("success", body.Booking.PaymentStatus)
}

func (s *BookingE2ESuite) TestReads() {
	ownerID, ownerToken := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, strangerToken := s.JWT.NewUser(s.T(), user.RoleViewer)
	_, adminToken := s.JWT.NewUser(s.T(), user.RoleAdmin)

	past := s.commit(ownerToken, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(-3), "K1"))
	for i := 0; i < 3; i++ {
		s.commit(ownerToken, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(2+i), "K2"))
	}

	s.Run("my bookings paginates newest first", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/my-bookings?limit=3", nil, ownerToken)
		var page resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Bookings, 3)
		s.Equal(int64(4), page.Pagination.Total)
		s.True(page.Pagination.HasMore)
		for _, b := range page.Bookings {
			s.Equal(ownerID, b.UserID)
		}

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/my-bookings?limit=3&offset=3", nil, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Bookings, 1)
		s.False(page.Pagination.HasMore)
		s.Equal(past.Booking.ID, page.Bookings[0].ID)
	})

	s.Run("upcoming skips past journeys", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/upcoming", nil, ownerToken)
		var body resdto.UpcomingBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Count)
	})

	s.Run("get is owner or admin only", func() {
		url := "/api/bookings/my-bookings/" + past.Booking.ID.String()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, adminToken)
		var actual resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &actual)

		opts := []cmp.Option{
			cmpopts.EquateApproxTime(time.Millisecond),
		}
		if diff := cmp.Diff(past.Booking, actual.Booking, opts...); diff != "" {
			s.T().Errorf("booking mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("expired token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/upcoming", nil,
			s.JWT.CreateExpiredToken(s.T(), ownerID, user.RoleViewer))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// ================================================================================
// Outbox relay
// ================================================================================

func (s *BookingE2ESuite) TestOutboxRelay_DeliversCommittedEvents() {
	_, token := s.JWT.NewUser(s.T(), user.RoleViewer)
	created := s.commit(token, s.createRequest(dbtest.SeededScheduleID, e2e.JourneyDate(6), "L1"))
	s.Require().Equal(http.StatusOK, httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/bookings/"+created.Booking.ID.String()+"/cancel", nil, token).Code)

	failing := &e2e.RecordingPublisher{Err: errors.New("broker down")}
	relay := worker.NewOutboxRelay(s.UoW, failing, clock.NewRealClock(), 10, 5, nil)
	s.Require().NoError(relay.RunOnce(s.T().Context()))
	s.Equal(2, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM outbox_events WHERE status = 'pending' AND attempts = 1 AND last_error IS NOT NULL"))

	// failed events are pushed into the future, so rewind them for the retry
	_, err := s.DB.Exec(s.T().Context(), "UPDATE outbox_events SET run_at = now() - interval '1 second'")
	s.Require().NoError(err)

	recording := &e2e.RecordingPublisher{}
	relay = worker.NewOutboxRelay(s.UoW, recording, clock.NewRealClock(), 10, 5, nil)
	s.Require().NoError(relay.RunOnce(s.T().Context()))

	events := recording.Events()
	s.Require().Len(events, 2)
	topics := []string{events[0].Topic, events[1].Topic}
	s.ElementsMatch([]string{shared.TopicBookingCreated, shared.TopicBookingCancelled}, topics)
	s.Equal(created.Booking.ID.String(), events[0].Key)

	var payload shared.BookingEvent
	s.Require().NoError(json.Unmarshal(events[0].Payload, &payload))
	s.Equal(created.Booking.ID, payload.BookingID)
	s.Equal(2, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM outbox_events WHERE status = 'sent'"))
}
