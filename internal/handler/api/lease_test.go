//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/handler/api"
	resdto "bus-seat-booking/internal/handler/dto/response"
	"bus-seat-booking/internal/handler/validation"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/tests/common/builder"
	"bus-seat-booking/tests/common/httptest"
	"bus-seat-booking/tests/common/testutil"
	commandsmock "bus-seat-booking/tests/mock/commands"
	queriesmock "bus-seat-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

// fakeAuth stands in for the JWT middleware: any bearer header authenticates as userID with role.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type LeaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLeaseCommands
	mockQueries  *queriesmock.MockLeaseQueries
	userID       uuid.UUID
}

func (s *LeaseHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
}

func (s *LeaseHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLeaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeaseQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewLeaseHandler(s.mockCommands, s.mockQueries, lease.TTL)

	auth := fakeAuth(s.userID, user.RoleViewer)
	s.router.POST("/api/seat-locks/lock", auth, h.Lock)
	s.router.POST("/api/seat-locks/unlock", auth, h.Unlock)
	s.router.GET("/api/seat-locks/check", auth, h.Check)
	s.router.DELETE("/api/seat-locks/cleanup", auth, h.Cleanup)
}

func (s *LeaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeaseHandlerTestSuite))
}

type testCaseLease struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// Lock
// ================================================================================

func (s *LeaseHandlerTestSuite) TestLock() {
	url := "/api/seat-locks/lock"
	reqBody := builder.NewLeaseBuilder().BuildLockRequestDTO("A1", "A2")
	holder := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.Seat = "A2"
		b.SessionID = "sess-other"
	}).BuildDomain(handlerNow.Add(-4 * time.Minute))

	result := &lease.AcquireResult{
		SessionID: "sess-1",
		Granted:   []schedule.SeatNumber{"A1"},
		Denied:    []lease.Denial{lease.LockedByOther("A2", holder, handlerNow)},
		ExpiresAt: handlerNow.Add(lease.TTL),
	}

	s.Run("success: partial grant is still 200", func() {
		s.mockCommands.EXPECT().Acquire(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.AcquireLeaseRequest) (*lease.AcquireResult, error) {
				s.Equal(s.userID, req.UserID)
				s.Equal([]string{"A1", "A2"}, req.SeatNumbers)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.LockSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sess-1", body.SessionID)
		s.Equal([]string{"A1"}, body.LockedSeats)
		s.Require().Len(body.UnavailableSeats, 1)
		s.Equal("locked_by_other", body.UnavailableSeats[0].Reason)
		s.Equal(int64(360), body.UnavailableSeats[0].SecondsRemaining)
		s.Equal(int64(600), body.ExpiresInSeconds)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseLease{
			{name: "missing scheduleId", mutate: testutil.Field("scheduleId", nil), expectCode: http.StatusBadRequest},
			{name: "zero scheduleId", mutate: testutil.Field("scheduleId", 0), expectCode: http.StatusBadRequest},
			{name: "malformed journeyDate", mutate: testutil.Field("journeyDate", "02-11-2026"), expectCode: http.StatusBadRequest},
			{name: "empty seat list", mutate: testutil.Field("seatNumbers", []string{}), expectCode: http.StatusBadRequest},
			{name: "bad seat label", mutate: testutil.Field("seatNumbers", []string{"A 1"}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 404 for unknown schedule", func() {
		s.mockCommands.EXPECT().Acquire(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrScheduleNotFound, "schedule 1"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// Unlock / Check / Cleanup
// ================================================================================

func (s *LeaseHandlerTestSuite) TestUnlock() {
	url := "/api/seat-locks/unlock"
	body := map[string]any{
		"scheduleId":  1,
		"journeyDate": "2026-11-02",
		"seatNumbers": []string{"A1", "A2"},
		"sessionId":   "sess-1",
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), commands.ReleaseLeaseRequest{
			ScheduleID:  1,
			JourneyDate: "2026-11-02",
			SeatNumbers: []string{"A1", "A2"},
			SessionID:   "sess-1",
		}).Return(int64(1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		var res resdto.UnlockSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(1), res.UnlockedCount)
	})

	s.Run("error: sessionId required", func() {
		requestMap := testutil.DtoMap(s.T(), body, testutil.Field("sessionId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *LeaseHandlerTestSuite) TestCheck() {
	s.Run("success", func() {
		views := []queries.LeaseView{
			{SeatNumber: "A1", SessionID: "sess-1", LockedAt: handlerNow, ExpiresAt: handlerNow.Add(lease.TTL), SecondsRemaining: 600},
			{SeatNumber: "B2", SessionID: "sess-2", LockedAt: handlerNow, ExpiresAt: handlerNow.Add(time.Minute), SecondsRemaining: 60},
		}
		s.mockQueries.EXPECT().Inspect(gomock.Any(), int64(3), "2026-11-02").Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seat-locks/check?scheduleId=3&journeyDate=2026-11-02", nil, "bearer-token")
		var res resdto.CheckLocksResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(2, res.TotalLocked)
		s.Equal("B2", res.Locks[1].SeatNumber)
	})

	s.Run("error: missing journeyDate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seat-locks/check?scheduleId=3", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: store failure is 500", func() {
		s.mockQueries.EXPECT().Inspect(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("redis down"), errs.ErrStorage))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seat-locks/check?scheduleId=3&journeyDate=2026-11-02", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LeaseHandlerTestSuite) TestCleanup() {
	s.mockCommands.EXPECT().Sweep(gomock.Any()).Return(int64(7), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/seat-locks/cleanup", nil, "bearer-token")
	var res resdto.CleanupResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(int64(7), res.DeletedCount)
}
