//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.userID, user.RoleViewer)
	s.router.POST("/api/bookings/create", auth, h.Create)
	s.router.GET("/api/bookings/my-bookings", auth, h.ListMine)
	s.router.GET("/api/bookings/my-bookings/:id", auth, h.Get)
	s.router.GET("/api/bookings/upcoming", auth, h.ListUpcoming)
	s.router.POST("/api/bookings/:id/cancel", auth, h.Cancel)
	s.router.POST("/api/bookings/:id/settle-payment", auth, h.SettlePayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// Create
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings/create"
	b := builder.NewBookingBuilder().WithSeats("S", "D")
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView(handlerNow)
	result := &commands.CommitBookingResult{
		Booking:          view,
		BookingReference: view.BookingReference,
		TicketNumber:     view.TicketNumber,
	}

	s.Run("success: 201 with reference and ticket", func() {
		s.mockCommands.EXPECT().Commit(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ context.Context, req commands.CommitBookingRequest, _ uuid.UUID) (*commands.CommitBookingResult, error) {
				s.Equal([]string{"S", "D"}, req.SeatNumbers)
				s.Equal(2, req.NumberOfSeats)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.BookingReference, body.BookingReference)
		s.Equal(view.TicketNumber, body.TicketNumber)
		s.Require().NotNil(body.Booking)
		s.Equal(1200.0, body.Booking.TotalAmount)
		s.Equal([]string{"S", "D"}, body.Booking.SeatNumbers)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing passengerName", mutate: testutil.Field("passengerName", nil), expectCode: http.StatusBadRequest},
			{name: "missing passengerPhone", mutate: testutil.Field("passengerPhone", nil), expectCode: http.StatusBadRequest},
			{name: "zero totalAmount", mutate: testutil.Field("totalAmount", 0), expectCode: http.StatusBadRequest},
			{name: "unknown paymentStatus", mutate: testutil.Field("paymentStatus", "refunded"), expectCode: http.StatusBadRequest},
			{name: "bad email", mutate: testutil.Field("passengerEmail", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "malformed journeyDate", mutate: testutil.Field("journeyDate", "2026/11/02"), expectCode: http.StatusBadRequest},
			{name: "zero numberOfSeats", mutate: testutil.Field("numberOfSeats", 0), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 lists the conflicting seats", func() {
		conflict := errs.Mark(&commands.SeatConflictError{Seats: []schedule.SeatNumber{"D"}}, errs.ErrSeatConflict)
		s.mockCommands.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")

		var body struct {
			Detail struct {
				ConflictingSeats []string `json:"conflictingSeats"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal([]string{"D"}, body.Detail.ConflictingSeats)
	})

	s.Run("error: sentinel mapping", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"count mismatch", errs.Wrap(errs.ErrValidation, "numberOfSeats does not match"), http.StatusBadRequest},
			{"capacity", errs.ErrCapacityExceeded, http.StatusBadRequest},
			{"inactive schedule", errs.ErrScheduleNotFound, http.StatusNotFound},
			{"storage", errs.ErrStorage, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.code, rec.Code)
			})
		}
	})
}

// ================================================================================
// Reads
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	page := &queries.BookingPage{
		Bookings: []*queries.BookingView{builder.NewBookingBuilder().WithUserID(s.userID).BuildView(handlerNow)},
		Total:    11,
		Limit:    10,
		Offset:   0,
		HasMore:  true,
	}

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, 10, 0).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings?limit=10", nil, "bearer-token")
		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.True(body.Pagination.HasMore)
		s.Equal(int64(11), body.Pagination.Total)
	})

	s.Run("error: limit above 100", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings?limit=101", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestListUpcoming() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView(handlerNow)}
	s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), s.userID).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/upcoming", nil, "bearer-token")
	var body resdto.UpcomingBookingsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(1, body.Count)
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView(handlerNow)

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleViewer}, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings/"+view.ID.String(), nil, "bearer-token")
		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.Booking.ID)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView(handlerNow)
	view.BookingStatus = "cancelled"
	url := "/api/bookings/" + view.ID.String() + "/cancel"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, user.Actor{ID: s.userID, Role: user.RoleViewer}).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Booking.BookingStatus)
	})

	s.Run("error: 409 for a past journey", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "journey date has passed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
	})
}

func (s *BookingHandlerTestSuite) TestSettlePayment() {
	view := builder.NewBookingBuilder().BuildView(handlerNow)
	s.mockCommands.EXPECT().SettlePayment(gomock.Any(), view.ID).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/settle-payment", nil, "bearer-token")
	var body resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("confirmed", body.Booking.BookingStatus)
}
