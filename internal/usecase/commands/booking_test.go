//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/infra"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/commands"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/tests/common/builder"
	queriesmock "bus-seat-booking/tests/mock/queries"
	sharedmock "bus-seat-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)

type bookingFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	outbox   *sharedmock.MockOutboxRepository
	leases   *sharedmock.MockLeaseStore
	queries  *queriesmock.MockBookingQueries
	uc       commands.BookingCommands

	// seats already held on the journey, as seen by the capacity check
	claimed    int64
	claimedErr error
}

type nopDBTX struct{ sqlc.DBTX }

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
		leases:   sharedmock.NewMockLeaseStore(ctrl),
		queries:  queriesmock.NewMockBookingQueries(ctrl),
	}
	db := nopDBTX{}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.reads.EXPECT().ClaimedSeatCount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int64, schedule.JourneyDate) (int64, error) {
			return f.claimed, f.claimedErr
		}).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.tx.EXPECT().DB().Return(db).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uc = commands.NewBookingUseCase(f.uow, f.leases, f.queries, clock.NewMockClock(bookingNow))
	return f
}

func TestBookingUseCase_Commit(t *testing.T) {
	t.Run("success claims seats, issues ticket and releases leases", func(t *testing.T) {
		f := newBookingFixture(t)
		req := builder.NewBookingBuilder().WithSeats("S", "D").BuildCommand()
		userID := uuid.New()
		view := builder.NewBookingBuilder().WithSeats("S", "D").BuildView(bookingNow)

		var created *booking.Booking
		gomock.InOrder(
			f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil),
			f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
					created = b
					return nil
				}),
			f.bookings.EXPECT().ClaimSeats(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]schedule.SeatNumber{"S", "D"}, nil),
			f.bookings.EXPECT().IssueTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), bookingNow).Return(nil),
			f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), shared.TopicBookingCreated, gomock.Any(), gomock.Any(), bookingNow).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ string, aggregateID uuid.UUID, payload []byte, _ time.Time) error {
					var ev shared.BookingEvent
					require.NoError(t, json.Unmarshal(payload, &ev))
					assert.Equal(t, created.ID(), aggregateID)
					assert.Equal(t, []string{"S", "D"}, ev.SeatNumbers)
					assert.Equal(t, userID, ev.UserID)
					return nil
				}),
			f.leases.EXPECT().Release(gomock.Any(), int64(1), gomock.Any(), []schedule.SeatNumber{"S", "D"}, "sess-builder", bookingNow).Return(int64(2), nil),
			f.queries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(view, nil),
		)

		result, err := f.uc.Commit(context.Background(), req, userID)
		require.NoError(t, err)

		assert.Equal(t, view, result.Booking)
		assert.Equal(t, created.Reference(), result.BookingReference)
		assert.Regexp(t, `^TKT-20261101-[0-9a-f]{8}$`, result.TicketNumber)
		assert.Equal(t, userID, created.UserID())
	})

	t.Run("seat already claimed yields conflict with the contested seats", func(t *testing.T) {
		f := newBookingFixture(t)
		req := builder.NewBookingBuilder().WithSeats("S", "D").BuildCommand()

		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.bookings.EXPECT().ClaimSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schedule.SeatNumber{"S"}, nil)
		f.bookings.EXPECT().IssueTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.leases.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := f.uc.Commit(context.Background(), req, uuid.New())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, errs.ErrSeatConflict))

		seats, ok := commands.ConflictingSeats(err)
		require.True(t, ok)
		assert.Equal(t, []schedule.SeatNumber{"D"}, seats)
	})

	t.Run("request validation happens before the transaction", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
		}{
			{name: "count mismatch", mutate: func(b *builder.BookingBuilder) { b.WithNumberOfSeats(3) }},
			{name: "duplicate seats", mutate: func(b *builder.BookingBuilder) { b.WithSeats("A1", "A1") }},
			{name: "zero total", mutate: func(b *builder.BookingBuilder) { b.WithTotal(0) }},
			{name: "missing passenger", mutate: func(b *builder.BookingBuilder) { b.PassengerName = " " }},
			{name: "bad payment status", mutate: func(b *builder.BookingBuilder) { b.PaymentStatus = "failed" }},
			{name: "bad date", mutate: func(b *builder.BookingBuilder) { b.WithJourneyDate("tomorrow") }},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				uow := sharedmock.NewMockUnitOfWork(ctrl)
				uow.EXPECT().Within(gomock.Any(), gomock.Any()).Times(0)
				uc := commands.NewBookingUseCase(uow, sharedmock.NewMockLeaseStore(ctrl), queriesmock.NewMockBookingQueries(ctrl), clock.NewMockClock(bookingNow))

				b := builder.NewBookingBuilder()
				tc.mutate(b)
				_, err := uc.Commit(context.Background(), b.BuildCommand(), uuid.New())
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})

	t.Run("more seats than the bus has", func(t *testing.T) {
		f := newBookingFixture(t)
		small := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.TotalSeats = 1 }).BuildDomain()
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(small, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))
	})

	t.Run("bookings already on the journey count against capacity", func(t *testing.T) {
		f := newBookingFixture(t)
		f.claimed = 39
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))
		assert.Contains(t, err.Error(), "39 of 40 already booked")
	})

	t.Run("last seats on the journey can still be booked", func(t *testing.T) {
		f := newBookingFixture(t)
		f.claimed = 38
		view := builder.NewBookingBuilder().BuildView(bookingNow)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.bookings.EXPECT().ClaimSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schedule.SeatNumber{"A1", "A2"}, nil)
		f.bookings.EXPECT().IssueTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.leases.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		require.NoError(t, err)
	})

	t.Run("claimed count failure is a storage error", func(t *testing.T) {
		f := newBookingFixture(t)
		f.claimedErr = errors.New("connection reset")
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})

	t.Run("inactive schedule", func(t *testing.T) {
		f := newBookingFixture(t)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().AsInactive().BuildDomain(), nil)

		_, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrScheduleNotFound))
	})

	t.Run("lease release failure does not fail the commit", func(t *testing.T) {
		f := newBookingFixture(t)
		view := builder.NewBookingBuilder().BuildView(bookingNow)
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.bookings.EXPECT().ClaimSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schedule.SeatNumber{"A1", "A2"}, nil)
		f.bookings.EXPECT().IssueTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.leases.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, result.Booking)
	})

	t.Run("read-back failure after commit still reports the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		userID := uuid.New()
		departure := builder.NewScheduleBuilder().DepartureTime

		var created *booking.Booking
		f.reads.EXPECT().ScheduleByID(gomock.Any(), int64(1)).Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
				created = b
				return nil
			})
		f.bookings.EXPECT().ClaimSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return([]schedule.SeatNumber{"A1", "A2"}, nil)
		f.bookings.EXPECT().IssueTicket(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.leases.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(nil, errors.New("read replica unavailable"))

		result, err := f.uc.Commit(context.Background(), builder.NewBookingBuilder().BuildCommand(), userID)
		require.NoError(t, err)
		require.NotNil(t, result.Booking)

		got := result.Booking
		assert.Equal(t, created.ID(), got.ID)
		assert.Equal(t, created.Reference(), got.BookingReference)
		assert.Equal(t, result.TicketNumber, got.TicketNumber)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "2026-11-02", got.JourneyDate)
		assert.Equal(t, departure, got.DepartureTime)
		assert.Equal(t, []string{"A1", "A2"}, got.SeatNumbers)
		assert.Equal(t, int32(2), got.NumberOfSeats)
		assert.Equal(t, int64(120000), got.TotalAmountCents)
		assert.Equal(t, "confirmed", got.BookingStatus)
		assert.Equal(t, "success", got.PaymentStatus)
	})
}

func TestBookingUseCase_Cancel(t *testing.T) {
	owner := uuid.New()

	load := func(t *testing.T, journeyDate string) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().WithUserID(owner).WithJourneyDate(journeyDate).BuildDomain(bookingNow.Add(-24 * time.Hour))
		require.NoError(t, err)
		return b
	}

	t.Run("owner cancels and seats are freed", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-11-02")
		view := builder.NewBookingBuilder().BuildView(bookingNow)

		gomock.InOrder(
			f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil),
			f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusConfirmed).Return(nil),
			f.bookings.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), b.ID()).Return(int64(2), nil),
			f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), shared.TopicBookingCancelled, b.ID(), gomock.Any(), bookingNow).Return(nil),
			f.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(view, nil),
		)

		got, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(owner, user.RoleViewer))
		require.NoError(t, err)
		assert.Equal(t, view, got)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("read-back failure after cancel still reports the cancelled booking", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-11-02")
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusConfirmed).Return(nil)
		f.bookings.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), b.ID()).Return(int64(2), nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(nil, errors.New("connection reset"))

		got, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(owner, user.RoleViewer))
		require.NoError(t, err)
		assert.Equal(t, b.ID(), got.ID)
		assert.Equal(t, "cancelled", got.BookingStatus)
		assert.Equal(t, owner, got.UserID)
	})

	t.Run("another user's booking reads as not found", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-11-02")
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(uuid.New(), user.RoleViewer))
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("admin may cancel any booking", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-11-02")
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusConfirmed).Return(nil)
		f.bookings.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), b.ID()).Return(int64(2), nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(&queries.BookingView{ID: b.ID()}, nil)

		_, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(uuid.New(), user.RoleAdmin))
		require.NoError(t, err)
	})

	t.Run("past journey cannot be cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-10-31")
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(owner, user.RoleViewer))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.ErrorIs(t, err, booking.ErrJourneyInPast)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.uc.Cancel(context.Background(), uuid.New(), user.NewActor(owner, user.RoleViewer))
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("concurrent status change", func(t *testing.T) {
		f := newBookingFixture(t)
		b := load(t, "2026-11-02")
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusConfirmed).
			Return(infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindNotFound))

		_, err := f.uc.Cancel(context.Background(), b.ID(), user.NewActor(owner, user.RoleViewer))
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestBookingUseCase_SettlePayment(t *testing.T) {
	t.Run("pending booking is confirmed", func(t *testing.T) {
		f := newBookingFixture(t)
		b, err := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildDomain(bookingNow)
		require.NoError(t, err)

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), shared.TopicBookingConfirmed, b.ID(), gomock.Any(), gomock.Any()).Return(nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(&queries.BookingView{ID: b.ID(), BookingStatus: "confirmed"}, nil)

		got, err := f.uc.SettlePayment(context.Background(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "confirmed", got.BookingStatus)
		assert.Equal(t, booking.PaymentSuccess, b.Payment().Status)
	})

	t.Run("read-back failure after settling still reports the confirmed booking", func(t *testing.T) {
		f := newBookingFixture(t)
		b, err := builder.NewBookingBuilder().WithPaymentStatus(booking.PaymentPending).BuildDomain(bookingNow)
		require.NoError(t, err)

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, booking.StatusPending).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID()).Return(nil, errors.New("connection reset"))

		got, err := f.uc.SettlePayment(context.Background(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "confirmed", got.BookingStatus)
		assert.Equal(t, "success", got.PaymentStatus)
	})

	t.Run("confirmed booking cannot be settled twice", func(t *testing.T) {
		f := newBookingFixture(t)
		b, err := builder.NewBookingBuilder().BuildDomain(bookingNow)
		require.NoError(t, err)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err = f.uc.SettlePayment(context.Background(), b.ID())
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestBookingUseCase_CompleteDeparted(t *testing.T) {
	t.Run("emits one event per completed booking", func(t *testing.T) {
		f := newBookingFixture(t)
		before := schedule.MustParseJourneyDate("2026-11-01")
		rows := []shared.CompletedBooking{{ID: uuid.New(), UserID: uuid.New()}, {ID: uuid.New(), UserID: uuid.New()}}

		f.bookings.EXPECT().CompleteDeparted(gomock.Any(), gomock.Any(), before, bookingNow).Return(rows, nil)
		for _, row := range rows {
			f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), shared.TopicBookingCompleted, row.ID, gomock.Any(), bookingNow).Return(nil)
		}

		n, err := f.uc.CompleteDeparted(context.Background(), before)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.uc.CompleteDeparted(context.Background(), schedule.JourneyDate{})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
