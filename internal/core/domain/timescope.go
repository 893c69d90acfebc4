package domain

import (
	"fmt"
	"time"
)

// Granularity is the precision at which a collection window is specified.
type Granularity int

const (
	// GranularityYear covers a whole calendar year.
	GranularityYear Granularity = iota + 1

	// GranularityMonth covers a whole calendar month.
	GranularityMonth

	// GranularityDay covers a single calendar day.
	GranularityDay
)

// String returns the string representation.
func (g Granularity) String() string {
	switch g {
	case GranularityYear:
		return "year"
	case GranularityMonth:
		return "month"
	case GranularityDay:
		return "day"
	default:
		return "unknown"
	}
}

// TimeScope is a collection window specified as year, optional month and
// optional day. A zero month or day means unset. Instances are only built
// through NewTimeScope, so a TimeScope in circulation is always valid.
type TimeScope struct {
	year  int
	month int
	day   int
}

const (
	minScopeYear = 1900
	maxScopeYear = 2100
)

// NewTimeScope builds a validated collection window. Month and day may be
// zero to widen the window; a day without a month is rejected.
func NewTimeScope(year, month, day int) (TimeScope, error) {
	if year < minScopeYear || year > maxScopeYear {
		return TimeScope{}, invalidInputf("year %d out of range [%d, %d]", year, minScopeYear, maxScopeYear)
	}
	if month == 0 && day != 0 {
		return TimeScope{}, invalidInputf("month is required if day is specified")
	}
	if month != 0 && (month < 1 || month > 12) {
		return TimeScope{}, invalidInputf("month %d out of range [1, 12]", month)
	}
	if day != 0 {
		if day < 1 || day > 31 {
			return TimeScope{}, invalidInputf("day %d out of range [1, 31]", day)
		}
		// time.Date normalises overflow (June 31 -> July 1), which is how
		// we detect days that do not exist in the month.
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.Day() != day || d.Month() != time.Month(month) {
			return TimeScope{}, invalidInputf("day %d does not exist in %d-%02d", day, year, month)
		}
	}
	return TimeScope{year: year, month: month, day: day}, nil
}

// Year returns the scope year.
func (s TimeScope) Year() int { return s.year }

// Month returns the scope month, or 0 if unset.
func (s TimeScope) Month() int { return s.month }

// Day returns the scope day, or 0 if unset.
func (s TimeScope) Day() int { return s.day }

// Granularity returns the precision of the window, derived from which
// optional fields are set.
func (s TimeScope) Granularity() Granularity {
	switch {
	case s.month != 0 && s.day != 0:
		return GranularityDay
	case s.month != 0:
		return GranularityMonth
	default:
		return GranularityYear
	}
}

// ClosestDay returns the last day of the window, or the day itself when the
// window is fully specified.
func (s TimeScope) ClosestDay() time.Time {
	_, end := s.Range()
	return end
}

// Range converts the window to an inclusive [start, end] date range.
// Both bounds are midnight UTC dates.
func (s TimeScope) Range() (start, end time.Time) {
	switch s.Granularity() {
	case GranularityDay:
		start = time.Date(s.year, time.Month(s.month), s.day, 0, 0, 0, 0, time.UTC)
		end = start
	case GranularityMonth:
		start = time.Date(s.year, time.Month(s.month), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	default:
		start = time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, -1)
	}
	return start, end
}

// Days returns every calendar day in the window, first to last inclusive.
// Month lengths and leap years fall out of time.AddDate: a leap-year scope
// yields 366 days.
func (s TimeScope) Days() []time.Time {
	start, end := s.Range()

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String renders the window as "2024", "2024-06" or "2024-06-15".
func (s TimeScope) String() string {
	switch s.Granularity() {
	case GranularityDay:
		return fmt.Sprintf("%04d-%02d-%02d", s.year, s.month, s.day)
	case GranularityMonth:
		return fmt.Sprintf("%04d-%02d", s.year, s.month)
	default:
		return fmt.Sprintf("%04d", s.year)
	}
}
