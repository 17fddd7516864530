package readstore

import (
	"context"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
)

type ScheduleReadQueries interface {
	GetScheduleForBooking(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetScheduleForBookingRow, error)
	ListBookedSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSeatsParams) ([]string, error)
	CountClaimedSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.CountClaimedSeatsParams) (int64, error)
}

// ScheduleReadStore is the catalog lookup plus the booked-seat check. Both read tables
// this service does not own for writing through this path.
type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) FindByID(ctx context.Context, id int64) (*schedule.Schedule, error) {
	row, err := r.queries.GetScheduleForBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get schedule", err)
	}
	return &schedule.Schedule{
		ID:            row.ID,
		IsActive:      row.IsActive,
		TotalSeats:    row.TotalSeats,
		DepartureTime: pgconv.TimeFromPgtype(row.DepartureTime),
	}, nil
}

func (r *ScheduleReadStore) BookedSeats(ctx context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber) ([]schedule.SeatNumber, error) {
	if len(seats) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListBookedSeats(ctx, r.db, sqlc.ListBookedSeatsParams{
		ScheduleID:  scheduleID,
		JourneyDate: pgconv.JourneyDateToPgtype(date),
		SeatNumbers: schedule.SeatStrings(seats),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked seats", err)
	}
	booked := make([]schedule.SeatNumber, len(rows))
	for i, s := range rows {
		booked[i] = schedule.SeatNumber(s)
	}
	return booked, nil
}

func (r *ScheduleReadStore) ClaimedSeatCount(ctx context.Context, scheduleID int64, date schedule.JourneyDate) (int64, error) {
	n, err := r.queries.CountClaimedSeats(ctx, r.db, sqlc.CountClaimedSeatsParams{
		ScheduleID:  scheduleID,
		JourneyDate: pgconv.JourneyDateToPgtype(date),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count claimed seats", err)
	}
	return n, nil
}
