package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "bus-seat-booking/internal/handler/dto/request"
	resdto "bus-seat-booking/internal/handler/dto/response"
	"bus-seat-booking/internal/handler/httperr"
	"bus-seat-booking/internal/handler/middleware"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingUser = errors.New("authenticated user missing from context")

type LeaseHandler struct {
	cmds commands.LeaseCommands
	q    queries.LeaseQueries
	ttl  time.Duration
}

func NewLeaseHandler(cmds commands.LeaseCommands, q queries.LeaseQueries, ttl time.Duration) *LeaseHandler {
	return &LeaseHandler{cmds: cmds, q: q, ttl: ttl}
}

// @Summary Lock seats
// @Description Acquire or renew temporary locks on seats. Every requested seat is either locked or reported as unavailable.
// @Tags seat-locks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LockSeatsRequest true "Lock request"
// @Success 200 {object} resdto.LockSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/seat-locks/lock [post]
func (h *LeaseHandler) Lock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	var req reqdto.LockSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	result, err := h.cmds.Acquire(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcquireResult(result, h.ttl))
}

// @Summary Unlock seats
// @Description Release seats locked by the given session. Locks held by other sessions are untouched.
// @Tags seat-locks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnlockSeatsRequest true "Unlock request"
// @Success 200 {object} resdto.UnlockSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/seat-locks/unlock [post]
func (h *LeaseHandler) Unlock(c *gin.Context) {
	var req reqdto.UnlockSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	n, err := h.cmds.Release(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UnlockSeatsResponse{UnlockedCount: n})
}

// @Summary Check locks
// @Description List live seat locks of a schedule on a journey date
// @Tags seat-locks
// @Produce json
// @Security BearerAuth
// @Param scheduleId query int true "Schedule ID"
// @Param journeyDate query string true "Journey date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CheckLocksResponse
// @Failure 400 {object} httperr.Response
// @Router /api/seat-locks/check [get]
func (h *LeaseHandler) Check(c *gin.Context) {
	var q reqdto.CheckLocksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBindError(c, err)
		return
	}

	views, err := h.q.Inspect(c.Request.Context(), q.ScheduleID, q.JourneyDate)
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaseViews(views))
}

// @Summary Cleanup expired locks
// @Description Delete every expired seat lock
// @Tags seat-locks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CleanupResponse
// @Failure 403 {object} httperr.Response
// @Router /api/seat-locks/cleanup [delete]
func (h *LeaseHandler) Cleanup(c *gin.Context) {
	n, err := h.cmds.Sweep(c.Request.Context())
	if err != nil {
		abortUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CleanupResponse{DeletedCount: n})
}
