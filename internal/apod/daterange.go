package apod

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRange is returned for dates outside the archive or a reversed range.
var ErrInvalidRange = errors.New("invalid date range")

// ArchiveStart is the first day the archive publishes.
var ArchiveStart = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

// DefaultRangeDays is how far before today the default range starts.
const DefaultRangeDays = 9

// Range is an inclusive span of calendar days in UTC.
type Range struct {
	Start time.Time
	End   time.Time
}

// DefaultRange spans the given number of days before today up to today.
func DefaultRange(now time.Time, days int) Range {
	if days < 0 {
		days = DefaultRangeDays
	}
	end := Day(now)
	start := end.AddDate(0, 0, -days)
	if start.Before(ArchiveStart) {
		start = ArchiveStart
	}
	return Range{Start: start, End: end}
}

// ParseRange parses two YYYY-MM-DD values and validates them against today.
func ParseRange(start, end string, now time.Time) (Range, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Range{}, fmt.Errorf("start date: %w", err)
	}
	e, err := ParseDay(end)
	if err != nil {
		return Range{}, fmt.Errorf("end date: %w", err)
	}
	r := Range{Start: s, End: e}
	if err := r.Validate(now); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseDay parses a single YYYY-MM-DD value.
func ParseDay(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidRange)
	}
	t, err := time.Parse(time.DateOnly, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidRange, trimmed)
	}
	return t, nil
}

// CheckDay reports whether a single day lies in [ArchiveStart, today].
func CheckDay(day, now time.Time) error {
	today := Day(now)
	if day.Before(ArchiveStart) {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidRange, day.Format(time.DateOnly), ArchiveStart.Format(time.DateOnly))
	}
	if day.After(today) {
		return fmt.Errorf("%w: %s is after today", ErrInvalidRange, day.Format(time.DateOnly))
	}
	return nil
}

func (r Range) Validate(now time.Time) error {
	if err := CheckDay(r.Start, now); err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	if err := CheckDay(r.End, now); err != nil {
		return fmt.Errorf("end date: %w", err)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidRange)
	}
	return nil
}

func (r Range) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
