//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain(now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain(now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Regexp(t, regexp.MustCompile(`^BK20261101[A-Z2-9]{6}$`), actual.Reference())
		assert.Equal(t, []schedule.SeatNumber{"A1", "A2"}, actual.Seats())
		assert.Equal(t, 2, actual.NumberOfSeats())
		assert.Equal(t, int64(120000), actual.Total().Cents())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("pending payment yields pending booking", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildDomain(now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, actual.Status())
	})

	t.Run("seat validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no seats",
				mutate: func(b *builder.BookingBuilder) { b.WithSeats() },
				errIs:  booking.ErrNoSeats,
			},
			{
				name:   "count mismatch",
				mutate: func(b *builder.BookingBuilder) { b.WithNumberOfSeats(3) },
				errIs:  booking.ErrSeatCountMismatch,
			},
			{
				name:   "duplicate seat",
				mutate: func(b *builder.BookingBuilder) { b.WithSeats("A1", "A1") },
				errIs:  booking.ErrDuplicateSeat,
			},
			{
				name:   "malformed seat label",
				mutate: func(b *builder.BookingBuilder) { b.WithSeats("A 1") },
				errIs:  schedule.ErrInvalidSeatNumber,
			},
			{
				name:   "single seat",
				mutate: func(b *builder.BookingBuilder) { b.WithSeats("L12") },
			},
		})
	})

	t.Run("schedule validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero schedule id",
				mutate: func(b *builder.BookingBuilder) { b.WithScheduleID(0) },
				errIs:  schedule.ErrInvalidScheduleID,
			},
		})
	})
}

func TestMoney(t *testing.T) {
	m, err := booking.NewMoneyFromAmount(1250.5)
	require.NoError(t, err)
	assert.Equal(t, int64(125050), m.Cents())

	for _, amount := range []float64{0, -1} {
		_, err = booking.NewMoneyFromAmount(amount)
		assert.ErrorIs(t, err, booking.ErrNonPositiveAmount)
	}
}

func TestBooking_Transitions(t *testing.T) {
	t.Run("pending confirms", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildDomain(now)
		require.NoError(t, err)

		require.NoError(t, b.Confirm(now.Add(time.Minute)))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentSuccess, b.Payment().Status)
		assert.ErrorIs(t, b.Confirm(now), booking.ErrInvalidTransition)
	})

	t.Run("cancel before the journey", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithJourneyDate("2026-11-01").BuildDomain(now)
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.ErrorIs(t, b.Cancel(now), booking.ErrInvalidTransition)
	})

	t.Run("cancel after the journey date is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithJourneyDate("2026-10-31").BuildDomain(now)
		require.NoError(t, err)

		assert.ErrorIs(t, b.Cancel(now), booking.ErrJourneyInPast)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain(now)
		require.NoError(t, err)

		require.NoError(t, b.Complete(now))
		assert.True(t, b.Status().IsTerminal())
		assert.ErrorIs(t, b.Cancel(now), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.Complete(now), booking.ErrInvalidTransition)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildDomain(now)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Complete(now), booking.ErrInvalidTransition)
	})
}

func TestNewTicketNumber(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^TKT-20261101-[0-9a-f]{8}$`), booking.NewTicketNumber(now))
}
