package repository

import (
	"context"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type SeatLeaseQueries interface {
	AcquireSeatLease(ctx context.Context, db sqlc.DBTX, arg sqlc.AcquireSeatLeaseParams) (sqlc.AcquireSeatLeaseRow, error)
	GetSeatLease(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSeatLeaseParams) (sqlc.SeatLeases, error)
	ReleaseSeatLeases(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSeatLeasesParams) (int64, error)
	ListLiveSeatLeases(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveSeatLeasesParams) ([]sqlc.SeatLeases, error)
	DeleteExpiredSeatLeases(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	DeleteExpiredSeatLeasesForSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteExpiredSeatLeasesForScheduleParams) (int64, error)
}

// SeatLeaseStore keeps leases in the seat_leases table. Arbitration happens inside a
// single upsert statement, so it is safe across server instances.
type SeatLeaseStore struct {
	queries SeatLeaseQueries
	db      sqlc.DBTX
}

func NewSeatLeaseStore(queries SeatLeaseQueries, db sqlc.DBTX) *SeatLeaseStore {
	return &SeatLeaseStore{
		queries: queries,
		db:      db,
	}
}

var _ shared.LeaseStore = (*SeatLeaseStore)(nil)

// holderLookupAttempts bounds the retry when the holder expires between the failed upsert
// and the read that reports it.
const holderLookupAttempts = 2

func (s *SeatLeaseStore) Acquire(ctx context.Context, l lease.Lease, now time.Time) (lease.Outcome, *lease.Lease, error) {
	for attempt := 0; attempt < holderLookupAttempts; attempt++ {
		row, err := s.queries.AcquireSeatLease(ctx, s.db, sqlc.AcquireSeatLeaseParams{
			ScheduleID:  l.ScheduleID,
			JourneyDate: pgconv.JourneyDateToPgtype(l.JourneyDate),
			SeatNumber:  l.Seat.String(),
			SessionID:   l.SessionID,
			UserID:      pgconv.UUIDToPgtype(l.UserID),
			LockedAt:    pgconv.TimeToPgtype(l.LockedAt),
			ExpiresAt:   pgconv.TimeToPgtype(l.ExpiresAt),
		})
		if err == nil {
			if row.Renewed {
				return lease.OutcomeRenewed, nil, nil
			}
			return lease.OutcomeCreated, nil, nil
		}
		if !pgconv.IsNoRows(err) {
			return 0, nil, infra.WrapRepoErr("failed to acquire seat lease", err)
		}

		holder, err := s.queries.GetSeatLease(ctx, s.db, sqlc.GetSeatLeaseParams{
			ScheduleID:  l.ScheduleID,
			JourneyDate: pgconv.JourneyDateToPgtype(l.JourneyDate),
			SeatNumber:  l.Seat.String(),
		})
		if err != nil {
			if pgconv.IsNoRows(err) {
				continue
			}
			return 0, nil, infra.WrapRepoErr("failed to read seat lease holder", err)
		}
		h := toLease(holder)
		if h.IsLive(now) {
			return lease.OutcomeHeldByOther, &h, nil
		}
	}
	return 0, nil, infra.WrapRepoErr("seat lease changed hands during acquisition", nil, infra.KindDBFailure)
}

func (s *SeatLeaseStore) Release(ctx context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber, sessionID string, now time.Time) (int64, error) {
	n, err := s.queries.ReleaseSeatLeases(ctx, s.db, sqlc.ReleaseSeatLeasesParams{
		ScheduleID:  scheduleID,
		JourneyDate: pgconv.JourneyDateToPgtype(date),
		SessionID:   sessionID,
		SeatNumbers: schedule.SeatStrings(seats),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release seat leases", err)
	}
	return n, nil
}

func (s *SeatLeaseStore) ListLive(ctx context.Context, scheduleID int64, date schedule.JourneyDate, now time.Time) ([]lease.Lease, error) {
	rows, err := s.queries.ListLiveSeatLeases(ctx, s.db, sqlc.ListLiveSeatLeasesParams{
		ScheduleID:  scheduleID,
		JourneyDate: pgconv.JourneyDateToPgtype(date),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seat leases", err)
	}
	leases := make([]lease.Lease, 0, len(rows))
	for _, row := range rows {
		leases = append(leases, toLease(row))
	}
	return leases, nil
}

func (s *SeatLeaseStore) SweepExpired(ctx context.Context, scope *shared.SweepScope, now time.Time) (int64, error) {
	var (
		n   int64
		err error
	)
	if scope == nil {
		n, err = s.queries.DeleteExpiredSeatLeases(ctx, s.db, pgconv.TimeToPgtype(now))
	} else {
		n, err = s.queries.DeleteExpiredSeatLeasesForSchedule(ctx, s.db, sqlc.DeleteExpiredSeatLeasesForScheduleParams{
			ScheduleID:  scope.ScheduleID,
			JourneyDate: pgconv.JourneyDateToPgtype(scope.JourneyDate),
			Now:         pgconv.TimeToPgtype(now),
		})
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired seat leases", err)
	}
	return n, nil
}

func toLease(row sqlc.SeatLeases) lease.Lease {
	return lease.Lease{
		Key: lease.Key{
			ScheduleID:  row.ScheduleID,
			JourneyDate: pgconv.JourneyDateFromPgtype(row.JourneyDate),
			Seat:        schedule.SeatNumber(row.SeatNumber),
		},
		SessionID: row.SessionID,
		UserID:    pgconv.UUIDFromPgtype(row.UserID),
		LockedAt:  pgconv.TimeFromPgtype(row.LockedAt),
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
	}
}
