package finance

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
)

// PeriodSelector identifies a symbolic reporting period that is resolved
// against the current time in the business timezone.
type PeriodSelector string

const (
	PeriodToday     PeriodSelector = "today"
	PeriodThisMonth PeriodSelector = "this_month"
	PeriodLastMonth PeriodSelector = "last_month"
)

func (s PeriodSelector) IsValid() bool {
	switch s {
	case PeriodToday, PeriodThisMonth, PeriodLastMonth:
		return true
	}
	return false
}

func (s PeriodSelector) String() string {
	return string(s)
}

// PeriodWindow is a half-open range of calendar time: Start is included,
// End is excluded. Both bounds are midnights in the business timezone.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns the number of calendar days the window spans.
func (w PeriodWindow) Days() int {
	n := 0
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// IsSingleDay reports whether the window covers exactly one calendar day.
func (w PeriodWindow) IsSingleDay() bool {
	return w.Start.AddDate(0, 0, 1).Equal(w.End)
}

// ResolvePeriod maps a symbolic selector onto a concrete window relative
// to now, evaluated in loc. Month windows always cover the full calendar
// month, so their length follows the month (28-31 days).
func ResolvePeriod(selector PeriodSelector, now time.Time, loc *time.Location) (PeriodWindow, error) {
	local := now.In(loc)

	switch selector {
	case PeriodToday:
		start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case PeriodThisMonth:
		start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case PeriodLastMonth:
		firstOfCurrent := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return PeriodWindow{Start: firstOfCurrent.AddDate(0, -1, 0), End: firstOfCurrent}, nil
	default:
		return PeriodWindow{}, shared.ErrInvalidPeriod
	}
}
