package errs

// Sentinel classes shared by the usecase and handler layers.
// Concrete errors are attached to one of these with Mark so that
// handlers can map them to a status code with errors.Is.
var (
	// Validation errors: rejected before any store is touched
	ErrValidation = New("validation error")

	// Lookup errors
	ErrScheduleNotFound = New("schedule not found or inactive")
	ErrBookingNotFound  = New("booking not found")

	// Conflict errors
	ErrSeatConflict      = New("seat conflict")
	ErrCapacityExceeded  = New("seat count exceeds schedule capacity")
	ErrInvalidTransition = New("invalid booking status transition")

	// Authorization errors
	ErrForbidden = New("forbidden")

	// Operation errors
	ErrStorage = New("storage operation failed")
)
