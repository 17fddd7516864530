//go:build unit || e2e

package builder

import (
	"time"

	"bus-seat-booking/internal/domain/schedule"
	sqlc "bus-seat-booking/internal/infra/sqlc/generated"
	"bus-seat-booking/internal/pkg/pgconv"
)

type ScheduleBuilder struct {
	ID            int64
	IsActive      bool
	TotalSeats    int32
	DepartureTime time.Time
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		ID:            1,
		IsActive:      true,
		TotalSeats:    40,
		DepartureTime: time.Date(2026, 11, 2, 22, 0, 0, 0, time.UTC),
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

func (s *ScheduleBuilder) AsInactive() *ScheduleBuilder {
	s.IsActive = false
	return s
}

func (s *ScheduleBuilder) BuildDomain() *schedule.Schedule {
	return &schedule.Schedule{
		ID:            s.ID,
		IsActive:      s.IsActive,
		TotalSeats:    s.TotalSeats,
		DepartureTime: s.DepartureTime,
	}
}

func (s *ScheduleBuilder) BuildInfra() sqlc.GetScheduleForBookingRow {
	return sqlc.GetScheduleForBookingRow{
		ID:            s.ID,
		IsActive:      s.IsActive,
		TotalSeats:    s.TotalSeats,
		DepartureTime: pgconv.TimeToPgtype(s.DepartureTime),
	}
}
