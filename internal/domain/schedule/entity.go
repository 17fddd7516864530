package schedule

import "time"

// Schedule is the catalog view the core needs: whether a run can be sold and how big it is.
type Schedule struct {
	ID            int64
	IsActive      bool
	TotalSeats    int32
	DepartureTime time.Time
}

func (s Schedule) CanSell() bool {
	return s.IsActive && s.TotalSeats > 0
}

func (s Schedule) Fits(numberOfSeats int) bool {
	return numberOfSeats > 0 && numberOfSeats <= int(s.TotalSeats)
}
