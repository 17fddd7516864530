package schedule

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidJourneyDate = errors.New("journey date must be in YYYY-MM-DD format")
	ErrInvalidSeatNumber  = errors.New("invalid seat number")
	ErrInvalidScheduleID  = errors.New("schedule id must be positive")
)

var seatNumberRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,9}$`)

// JourneyDate is a calendar date with no time-of-day component.
type JourneyDate struct {
	t time.Time
}

func ParseJourneyDate(s string) (JourneyDate, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return JourneyDate{}, ErrInvalidJourneyDate
	}
	return JourneyDate{t: t}, nil
}

func MustParseJourneyDate(s string) JourneyDate {
	d, err := ParseJourneyDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// JourneyDateOf returns the calendar date of t in t's own location.
func JourneyDateOf(t time.Time) JourneyDate {
	y, m, d := t.Date()
	return JourneyDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d JourneyDate) String() string {
	return d.t.Format(dateLayout)
}

func (d JourneyDate) Time() time.Time {
	return d.t
}

func (d JourneyDate) IsZero() bool {
	return d.t.IsZero()
}

func (d JourneyDate) Before(other JourneyDate) bool {
	return d.t.Before(other.t)
}

func (d JourneyDate) Equal(other JourneyDate) bool {
	return d.t.Equal(other.t)
}

type SeatNumber string

func NewSeatNumber(s string) (SeatNumber, error) {
	s = strings.TrimSpace(s)
	if !seatNumberRegex.MatchString(s) {
		return "", ErrInvalidSeatNumber
	}
	return SeatNumber(s), nil
}

func (s SeatNumber) String() string {
	return string(s)
}

func IsValidSeatNumber(s string) bool {
	return seatNumberRegex.MatchString(s)
}

// NewSeatNumbers validates every label and keeps the first occurrence of duplicates.
func NewSeatNumbers(raw []string) ([]SeatNumber, error) {
	seen := make(map[SeatNumber]struct{}, len(raw))
	seats := make([]SeatNumber, 0, len(raw))
	for _, r := range raw {
		seat, err := NewSeatNumber(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		seats = append(seats, seat)
	}
	return seats, nil
}

func SeatStrings(seats []SeatNumber) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = string(s)
	}
	return out
}
