package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("domain: start date is after end date")
)

// DateRange represents an inclusive [start, end] interval of calendar days.
// Both bounds are normalized to midnight UTC; the time-of-day component of
// the input is discarded. A single-day rental has Start == End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange from two dates.
// Returns ErrInvalidRange when start is after end (compared by calendar day).
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := TruncateToDay(start)
	e := TruncateToDay(end)

	if s.After(e) {
		return DateRange{}, ErrInvalidRange
	}

	return DateRange{Start: s, End: e}, nil
}

// Overlaps reports whether two inclusive ranges share at least one calendar day.
// Touching endpoints count: [5, 10] and [10, 15] overlap on day 10.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Contains reports whether the given date (by calendar day) falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	d := TruncateToDay(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days covered by the range, inclusive.
// A range where Start == End covers exactly one day.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
}

// StartsBefore reports whether the range starts before the given day.
func (r DateRange) StartsBefore(date time.Time) bool {
	return r.Start.Before(TruncateToDay(date))
}

// TruncateToDay drops the time-of-day component, keeping the calendar date in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
