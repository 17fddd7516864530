package commands

import (
	"context"
	"log/slog"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSessionRequired = errs.New("session id is required")

type AcquireLeaseRequest struct {
	ScheduleID  int64
	JourneyDate string
	SeatNumbers []string
	// SessionID is generated when empty.
	SessionID string
	UserID    uuid.UUID
}

type ReleaseLeaseRequest struct {
	ScheduleID  int64
	JourneyDate string
	SeatNumbers []string
	SessionID   string
}

type LeaseCommands interface {
	Acquire(ctx context.Context, req AcquireLeaseRequest) (*lease.AcquireResult, error)
	Release(ctx context.Context, req ReleaseLeaseRequest) (int64, error)
	// Sweep removes every expired lease regardless of schedule.
	Sweep(ctx context.Context) (int64, error)
}

type leaseUseCaseImpl struct {
	store shared.LeaseStore
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewLeaseUseCase(store shared.LeaseStore, uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration) LeaseCommands {
	if ttl <= 0 {
		ttl = lease.TTL
	}
	return &leaseUseCaseImpl{
		store: store,
		uow:   uow,
		clock: clk,
		ttl:   ttl,
	}
}

func (uc *leaseUseCaseImpl) Acquire(ctx context.Context, req AcquireLeaseRequest) (*lease.AcquireResult, error) {
	date, seats, err := parseSeatRequest(req.ScheduleID, req.JourneyDate, req.SeatNumbers)
	if err != nil {
		return nil, err
	}

	if _, err := loadSellableSchedule(ctx, uc.uow.CommandReads(), req.ScheduleID); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = lease.NewSessionID()
	}
	now := uc.clock.Now()
	result := &lease.AcquireResult{
		SessionID: sessionID,
		ExpiresAt: now.Add(uc.ttl),
	}

	scope := &shared.SweepScope{ScheduleID: req.ScheduleID, JourneyDate: date}
	if _, err := uc.store.SweepExpired(ctx, scope, now); err != nil {
		slog.WarnContext(ctx, "lazy lease sweep failed",
			"schedule_id", req.ScheduleID,
			"journey_date", date.String(),
			"error", err.Error())
	}

	booked, err := uc.uow.CommandReads().BookedSeats(ctx, req.ScheduleID, date, seats)
	if err != nil {
		slog.ErrorContext(ctx, "booked seat lookup failed", "schedule_id", req.ScheduleID, "error", err.Error())
		for _, seat := range seats {
			result.Deny(lease.StorageFailure(seat))
		}
		return result, nil
	}
	bookedSet := make(map[schedule.SeatNumber]struct{}, len(booked))
	for _, s := range booked {
		bookedSet[s] = struct{}{}
	}

	for _, seat := range seats {
		if _, ok := bookedSet[seat]; ok {
			result.Deny(lease.AlreadyBooked(seat))
			continue
		}

		key := lease.Key{ScheduleID: req.ScheduleID, JourneyDate: date, Seat: seat}
		outcome, holder, err := uc.store.Acquire(ctx, lease.New(key, sessionID, req.UserID, now, uc.ttl), now)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "seat lease acquire failed", "seat", seat.String(), "error", err.Error())
			result.Deny(lease.StorageFailure(seat))
		case outcome.Granted():
			result.Grant(seat)
		case holder != nil:
			result.Deny(lease.LockedByOther(seat, *holder, now))
		default:
			result.Deny(lease.StorageFailure(seat))
		}
	}

	return result, nil
}

func (uc *leaseUseCaseImpl) Release(ctx context.Context, req ReleaseLeaseRequest) (int64, error) {
	date, seats, err := parseSeatRequest(req.ScheduleID, req.JourneyDate, req.SeatNumbers)
	if err != nil {
		return 0, err
	}
	if req.SessionID == "" {
		return 0, errs.Mark(ErrSessionRequired, errs.ErrValidation)
	}

	n, err := uc.store.Release(ctx, req.ScheduleID, date, seats, req.SessionID, uc.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorage)
	}
	return n, nil
}

func (uc *leaseUseCaseImpl) Sweep(ctx context.Context) (int64, error) {
	n, err := uc.store.SweepExpired(ctx, nil, uc.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorage)
	}
	return n, nil
}

// parseSeatRequest collapses duplicate seats, keeping the first occurrence.
func parseSeatRequest(scheduleID int64, journeyDate string, raw []string) (schedule.JourneyDate, []schedule.SeatNumber, error) {
	if scheduleID <= 0 {
		return schedule.JourneyDate{}, nil, errs.Mark(schedule.ErrInvalidScheduleID, errs.ErrValidation)
	}
	date, err := schedule.ParseJourneyDate(journeyDate)
	if err != nil {
		return schedule.JourneyDate{}, nil, errs.Mark(err, errs.ErrValidation)
	}
	if len(raw) == 0 {
		return schedule.JourneyDate{}, nil, errs.Mark(errs.New("at least one seat number is required"), errs.ErrValidation)
	}
	seats, err := schedule.NewSeatNumbers(raw)
	if err != nil {
		return schedule.JourneyDate{}, nil, errs.Mark(err, errs.ErrValidation)
	}
	return date, seats, nil
}

func loadSellableSchedule(ctx context.Context, reads shared.CommandReads, id int64) (*schedule.Schedule, error) {
	s, err := reads.ScheduleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	if !s.CanSell() {
		return nil, errs.Mark(errs.Newf("schedule %d is inactive", id), errs.ErrScheduleNotFound)
	}
	return s, nil
}
