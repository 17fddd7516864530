package queries

import (
	"context"
	"time"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// BookingView is the read model shared by every booking endpoint.
type BookingView struct {
	ID               uuid.UUID `json:"id"`
	BookingReference string    `json:"bookingReference"`
	TicketNumber     string    `json:"ticketNumber,omitempty"`
	UserID           uuid.UUID `json:"userId"`
	ScheduleID       int64     `json:"scheduleId"`
	JourneyDate      string    `json:"journeyDate"`
	DepartureTime    time.Time `json:"departureTime"`
	NumberOfSeats    int32     `json:"numberOfSeats"`
	SeatNumbers      []string  `json:"seatNumbers"`
	PassengerName    string    `json:"passengerName"`
	PassengerPhone   string    `json:"passengerPhone"`
	PassengerEmail   string    `json:"passengerEmail,omitempty"`
	PickupPoint      string    `json:"pickupPoint,omitempty"`
	DropPoint        string    `json:"dropPoint,omitempty"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentStatus    string    `json:"paymentStatus"`
	BookingStatus    string    `json:"bookingStatus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BookingPage struct {
	Bookings []*BookingView
	Total    int64
	Limit    int
	Offset   int
	HasMore  bool
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*BookingView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, from schedule.JourneyDate) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check; used for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) (*BookingPage, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

// GetByID hides other users' bookings behind ErrBookingNotFound.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) (*BookingPage, error) {
	limit, offset = normalizePage(limit, offset)

	rows, err := q.store.ListByUser(ctx, userID, int32(limit), int32(offset)) // #nosec G115 -- bounded by normalizePage
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	total, err := q.store.CountByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	return &BookingPage{
		Bookings: rows,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
		HasMore:  int64(offset+len(rows)) < total,
	}, nil
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	today := schedule.JourneyDateOf(q.clock.Now())
	rows, err := q.store.ListUpcoming(ctx, userID, today)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return rows, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
