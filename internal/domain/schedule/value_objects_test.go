//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bus-seat-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJourneyDate(t *testing.T) {
	testCases := []struct {
		in    string
		valid bool
	}{
		{in: "2026-11-02", valid: true},
		{in: " 2026-11-02 ", valid: true},
		{in: "2026-02-30", valid: false},
		{in: "02-11-2026", valid: false},
		{in: "2026/11/02", valid: false},
		{in: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := schedule.ParseJourneyDate(tc.in)
			if !tc.valid {
				assert.ErrorIs(t, err, schedule.ErrInvalidJourneyDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026-11-02", d.String())
		})
	}
}

func TestJourneyDateOf_UsesLocalCalendarDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2026, 11, 2, 23, 30, 0, 0, ist)

	assert.Equal(t, "2026-11-02", schedule.JourneyDateOf(late).String())
	assert.True(t, schedule.MustParseJourneyDate("2026-11-01").Before(schedule.JourneyDateOf(late)))
}

func TestNewSeatNumbers_DedupesPreservingOrder(t *testing.T) {
	seats, err := schedule.NewSeatNumbers([]string{"A3", "A1", "A3", "B2"})
	require.NoError(t, err)
	assert.Equal(t, []schedule.SeatNumber{"A3", "A1", "B2"}, seats)

	_, err = schedule.NewSeatNumbers([]string{"A1", "??"})
	assert.ErrorIs(t, err, schedule.ErrInvalidSeatNumber)
}

func TestSchedule_Fits(t *testing.T) {
	s := schedule.Schedule{ID: 1, IsActive: true, TotalSeats: 40}

	assert.True(t, s.CanSell())
	assert.True(t, s.Fits(40))
	assert.False(t, s.Fits(41))
	assert.False(t, s.Fits(0))
	assert.False(t, schedule.Schedule{ID: 1, TotalSeats: 40}.CanSell())
}
