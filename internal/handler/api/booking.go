package api

import (
	"net/http"

	"bus-seat-booking/internal/domain/user"
	reqdto "bus-seat-booking/internal/handler/dto/request"
	resdto "bus-seat-booking/internal/handler/dto/response"
	"bus-seat-booking/internal/handler/httperr"
	"bus-seat-booking/internal/handler/middleware"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Commit seats into a booking. Seat locks are optional; seats already booked are reported in detail.conflictingSeats.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/create [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	result, err := h.cmds.Commit(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}

// @Summary My bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.BookingListResponse
// @Router /api/bookings/my-bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}

	page, err := h.q.ListMine(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Upcoming bookings
// @Description Confirmed bookings of the caller with a journey date today or later
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UpcomingBookingsResponse
// @Router /api/bookings/upcoming [get]
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UpcomingBookingsResponse{
		Bookings: resdto.FromBookingViews(views),
		Count:    len(views),
	})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/my-bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingEnvelope{Booking: resdto.FromBookingView(view)})
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking whose journey date has not passed. The seats become bookable again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingEnvelope{Booking: resdto.FromBookingView(view)})
}

// @Summary Settle payment
// @Description Confirm a pending booking once payment has settled
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/settle-payment [post]
func (h *BookingHandler) SettlePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.cmds.SettlePayment(c.Request.Context(), id)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingEnvelope{Booking: resdto.FromBookingView(view)})
}

func (h *BookingHandler) actorAndID(c *gin.Context) (actor user.Actor, id uuid.UUID, ok bool) {
	actor, ok = middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return actor, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return actor, uuid.Nil, false
	}
	return actor, id, true
}
