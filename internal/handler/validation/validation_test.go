//go:build unit

package validation_test

import (
	"testing"

	"bus-seat-booking/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatForm struct {
	JourneyDate string   `json:"journeyDate" binding:"required,journeydate"`
	Seats       []string `json:"seatNumbers" binding:"required,min=1,dive,seatnumber"`
	Count       int      `json:"numberOfSeats" binding:"required,max=60"`
}

func TestRegisterAndFieldErrors(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register())

	assert.NoError(t, binding.Validator.ValidateStruct(seatForm{JourneyDate: "2026-11-02", Seats: []string{"A1", "L12"}, Count: 2}))

	err := binding.Validator.ValidateStruct(seatForm{JourneyDate: "2026-13-40", Seats: []string{"A 1"}, Count: 61})
	require.Error(t, err)

	fields := validation.FieldErrors(err)
	byField := make(map[string]string, len(fields))
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be a date in YYYY-MM-DD format", byField["journeyDate"])
	assert.Equal(t, "must be a seat label such as A1", byField["seatNumbers[0]"])
	assert.Equal(t, "must be at most 60", byField["numberOfSeats"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(assert.AnError))
}
