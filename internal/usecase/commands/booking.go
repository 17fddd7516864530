package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bus-seat-booking/internal/domain/booking"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// SeatConflictError names the seats that another booking already holds.
type SeatConflictError struct {
	Seats []schedule.SeatNumber
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %s", strings.Join(schedule.SeatStrings(e.Seats), ", "))
}

func newSeatConflict(seats []schedule.SeatNumber) error {
	return errs.Mark(&SeatConflictError{Seats: seats}, errs.ErrSeatConflict)
}

// ConflictingSeats extracts the contested seats from a commit error.
func ConflictingSeats(err error) ([]schedule.SeatNumber, bool) {
	var sce *SeatConflictError
	if errs.As(err, &sce) {
		return sce.Seats, true
	}
	return nil, false
}

type CommitBookingRequest struct {
	ScheduleID      int64
	JourneyDate     string
	NumberOfSeats   int
	SeatNumbers     []string
	SessionID       string
	PassengerName   string
	PassengerPhone  string
	PassengerEmail  string
	PickupPoint     string
	DropPoint       string
	SpecialRequests string
	TotalAmount     float64
	PaymentMethod   string
	PaymentStatus   string
}

type CommitBookingResult struct {
	Booking          *queries.BookingView
	BookingReference string
	TicketNumber     string
}

type BookingCommands interface {
	Commit(ctx context.Context, req CommitBookingRequest, userID uuid.UUID) (*CommitBookingResult, error)
	Cancel(ctx context.Context, id uuid.UUID, actor user.Actor) (*queries.BookingView, error)
	SettlePayment(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	// CompleteDeparted marks confirmed bookings whose journey date is before the given date as completed.
	CompleteDeparted(ctx context.Context, before schedule.JourneyDate) (int, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	leases         shared.LeaseStore
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	leases shared.LeaseStore,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		leases:         leases,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) Commit(ctx context.Context, req CommitBookingRequest, userID uuid.UUID) (*CommitBookingResult, error) {
	now := uc.clock.Now()
	b, err := newBookingFromRequest(req, userID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	ticketNumber := booking.NewTicketNumber(now)

	var departure time.Time
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sched, err := loadSellableSchedule(ctx, tx.Reads(), b.ScheduleID())
		if err != nil {
			return err
		}
		departure = sched.DepartureTime
		if !sched.Fits(b.NumberOfSeats()) {
			return errs.Mark(errs.Newf("%d seats requested, schedule has %d", b.NumberOfSeats(), sched.TotalSeats), errs.ErrCapacityExceeded)
		}
		taken, err := tx.Reads().ClaimedSeatCount(ctx, b.ScheduleID(), b.JourneyDate())
		if err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		if taken+int64(b.NumberOfSeats()) > int64(sched.TotalSeats) {
			return errs.Mark(errs.Newf("%d seats requested, %d of %d already booked", b.NumberOfSeats(), taken, sched.TotalSeats), errs.ErrCapacityExceeded)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		claimed, err := tx.Bookings().ClaimSeats(ctx, tx.DB(), b)
		if err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		if lost := missingSeats(b.Seats(), claimed); len(lost) > 0 {
			return newSeatConflict(lost)
		}

		if err := tx.Bookings().IssueTicket(ctx, tx.DB(), b.ID(), ticketNumber, now); err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingCreated, b, now)
	})
	if err != nil {
		return nil, err
	}

	uc.releaseCommittedLeases(ctx, b)

	return &CommitBookingResult{
		Booking:          uc.readBack(ctx, b, ticketNumber, departure),
		BookingReference: b.Reference(),
		TicketNumber:     ticketNumber,
	}, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actor user.Actor) (*queries.BookingView, error) {
	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !actor.CanAccess(b.UserID()) {
			return errs.ErrBookingNotFound
		}

		now := uc.clock.Now()
		prev := b.Status()
		if err := b.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
		if err := updateStatus(ctx, tx, b, prev); err != nil {
			return err
		}
		if _, err := tx.Bookings().ReleaseSeats(ctx, tx.DB(), b.ID()); err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingCancelled, b, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.readBack(ctx, b, "", time.Time{}), nil
}

func (uc *bookingUseCaseImpl) SettlePayment(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var b *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		prev := b.Status()
		if err := b.Confirm(now); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
		if err := updateStatus(ctx, tx, b, prev); err != nil {
			return err
		}
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingConfirmed, b, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.readBack(ctx, b, "", time.Time{}), nil
}

func (uc *bookingUseCaseImpl) CompleteDeparted(ctx context.Context, before schedule.JourneyDate) (int, error) {
	if before.IsZero() {
		return 0, errs.Mark(schedule.ErrInvalidJourneyDate, errs.ErrValidation)
	}

	var completed int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		rows, err := tx.Bookings().CompleteDeparted(ctx, tx.DB(), before, now)
		if err != nil {
			return errs.Mark(err, errs.ErrStorage)
		}
		for _, row := range rows {
			payload, err := json.Marshal(shared.BookingEvent{
				BookingID:  row.ID,
				UserID:     row.UserID,
				Status:     booking.StatusCompleted.String(),
				OccurredAt: now,
			})
			if err != nil {
				return errs.Wrap(err, "failed to encode booking event")
			}
			if err := tx.Outbox().Enqueue(ctx, tx.DB(), shared.TopicBookingCompleted, row.ID, payload, now); err != nil {
				return errs.Mark(err, errs.ErrStorage)
			}
		}
		completed = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return completed, nil
}

// readBack returns the stored view of a booking whose transaction already
// committed. A failed read must not turn that success into an error, so it
// falls back to the in-memory booking; ticket and departure may then be empty.
func (uc *bookingUseCaseImpl) readBack(ctx context.Context, b *booking.Booking, ticketNumber string, departure time.Time) *queries.BookingView {
	view, err := uc.bookingQueries.GetByIDSystem(ctx, b.ID())
	if err == nil {
		return view
	}
	slog.WarnContext(ctx, "booking read-back failed after commit, answering from memory",
		"booking_id", b.ID().String(),
		"error", err.Error())
	return viewFromBooking(b, ticketNumber, departure)
}

func viewFromBooking(b *booking.Booking, ticketNumber string, departure time.Time) *queries.BookingView {
	p := b.Passenger()
	return &queries.BookingView{
		ID:               b.ID(),
		BookingReference: b.Reference(),
		TicketNumber:     ticketNumber,
		UserID:           b.UserID(),
		ScheduleID:       b.ScheduleID(),
		JourneyDate:      b.JourneyDate().String(),
		DepartureTime:    departure,
		NumberOfSeats:    int32(b.NumberOfSeats()),
		SeatNumbers:      schedule.SeatStrings(b.Seats()),
		PassengerName:    p.Name,
		PassengerPhone:   p.Phone,
		PassengerEmail:   p.Email,
		PickupPoint:      p.PickupPoint,
		DropPoint:        p.DropPoint,
		SpecialRequests:  p.SpecialRequests,
		TotalAmountCents: b.Total().Cents(),
		PaymentMethod:    b.Payment().Method,
		PaymentStatus:    string(b.Payment().Status),
		BookingStatus:    b.Status().String(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

// releaseCommittedLeases is best effort: acquire checks bookings before leases,
// so a leftover lease on a booked seat can never be granted to anyone.
func (uc *bookingUseCaseImpl) releaseCommittedLeases(ctx context.Context, b *booking.Booking) {
	if b.SessionID() == "" {
		return
	}
	if _, err := uc.leases.Release(ctx, b.ScheduleID(), b.JourneyDate(), b.Seats(), b.SessionID(), uc.clock.Now()); err != nil {
		slog.WarnContext(ctx, "failed to release leases after commit",
			"booking_id", b.ID().String(),
			"session_id", b.SessionID(),
			"error", err.Error())
	}
}

func newBookingFromRequest(req CommitBookingRequest, userID uuid.UUID, now time.Time) (*booking.Booking, error) {
	date, err := schedule.ParseJourneyDate(req.JourneyDate)
	if err != nil {
		return nil, err
	}
	passenger, err := booking.NewPassenger(req.PassengerName, req.PassengerPhone, req.PassengerEmail, req.PickupPoint, req.DropPoint, req.SpecialRequests)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewPaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, err
	}
	payment, err := booking.NewPayment(req.PaymentMethod, status)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoneyFromAmount(req.TotalAmount)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(booking.NewBookingParams{
		ScheduleID:    req.ScheduleID,
		JourneyDate:   date,
		NumberOfSeats: req.NumberOfSeats,
		Seats:         req.SeatNumbers,
		Passenger:     passenger,
		Total:         total,
		Payment:       payment,
		UserID:        userID,
		SessionID:     req.SessionID,
	}, now)
}

func findForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return b, nil
}

func updateStatus(ctx context.Context, tx shared.Tx, b *booking.Booking, prev booking.Status) error {
	err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, prev)
	if err == nil {
		return nil
	}
	// Row is locked FOR UPDATE, so a miss means the status moved under a different lock holder.
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return errs.Mark(err, errs.ErrStorage)
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(shared.BookingEvent{
		BookingID:        b.ID(),
		BookingReference: b.Reference(),
		UserID:           b.UserID(),
		ScheduleID:       b.ScheduleID(),
		JourneyDate:      b.JourneyDate().String(),
		SeatNumbers:      schedule.SeatStrings(b.Seats()),
		Status:           b.Status().String(),
		OccurredAt:       now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	if err := tx.Outbox().Enqueue(ctx, tx.DB(), topic, b.ID(), payload, now); err != nil {
		return errs.Mark(err, errs.ErrStorage)
	}
	return nil
}

// missingSeats keeps the request order of the seats that were not claimed.
func missingSeats(requested, claimed []schedule.SeatNumber) []schedule.SeatNumber {
	got := make(map[schedule.SeatNumber]struct{}, len(claimed))
	for _, s := range claimed {
		got[s] = struct{}{}
	}
	var lost []schedule.SeatNumber
	for _, s := range requested {
		if _, ok := got[s]; !ok {
			lost = append(lost, s)
		}
	}
	return lost
}
