package api

import (
	"net/http"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/handler/httperr"
	"bus-seat-booking/internal/handler/validation"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type seatConflictDetail struct {
	ConflictingSeats []string `json:"conflictingSeats"`
}

func abortBindError(c *gin.Context, err error) {
	var detail any
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}

// abortUseCaseError maps the sentinel classes to a status. Unclassified errors are 500.
func abortUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"reason": rootMessage(err)})
	case errs.Is(err, errs.ErrScheduleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found or inactive", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrSeatConflict):
		seats, _ := commands.ConflictingSeats(err)
		httperr.AbortWithError(c, http.StatusConflict, err, "Some seats are already booked",
			seatConflictDetail{ConflictingSeats: schedule.SeatStrings(seats)})
	case errs.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat count exceeds bus capacity", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot change to the requested status", gin.H{"reason": rootMessage(err)})
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
