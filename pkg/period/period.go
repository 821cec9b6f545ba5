// Package period provides pure calendar math for recurring activity
// generation: period boundaries per frequency class and the calendar
// coordinates (weekday, week-of-year, month) exclusion rules key on.
package period

import (
	"time"

	"github.com/routinely/backend/domain"
)

// Bounds is the concrete calendar interval a log entry represents. End is
// inclusive: the last representable millisecond of the period.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Calendar performs all date arithmetic in a single process-wide location.
type Calendar struct {
	loc *time.Location
}

// NewCalendar builds a Calendar bound to loc. A nil location falls back to UTC.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

// Location returns the calendar's configured location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Today returns the current date truncated to the start of day.
func (c *Calendar) Today() time.Time {
	return c.StartOfDay(time.Now().In(c.loc))
}

// StartOfDay truncates t to midnight in the calendar's location.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// DayBounds returns the [start-of-day, end-of-day] interval containing t.
func (c *Calendar) DayBounds(t time.Time) Bounds {
	start := c.StartOfDay(t)
	return Bounds{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Millisecond)}
}

// WeekBounds returns the Sunday-start week containing t.
func (c *Calendar) WeekBounds(t time.Time) Bounds {
	day := c.StartOfDay(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return Bounds{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Millisecond)}
}

// MonthBounds returns the calendar month containing t.
func (c *Calendar) MonthBounds(t time.Time) Bounds {
	t = t.In(c.loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.loc)
	return Bounds{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Millisecond)}
}

// ForFrequency returns the period bounds for t under the given frequency
// class. Unknown frequencies collapse to the single day.
func (c *Calendar) ForFrequency(freq domain.Frequency, t time.Time) Bounds {
	switch freq {
	case domain.FrequencyWeekly:
		return c.WeekBounds(t)
	case domain.FrequencyMonthly:
		return c.MonthBounds(t)
	default:
		return c.DayBounds(t)
	}
}

// NextBucket returns the exclusive upper bound of the existence-check range
// for a period starting at start: one day, week, or month later.
func (c *Calendar) NextBucket(freq domain.Frequency, start time.Time) time.Time {
	switch freq {
	case domain.FrequencyWeekly:
		return start.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// DayOfWeek returns the weekday number for t, 0=Sunday through 6=Saturday.
func (c *Calendar) DayOfWeek(t time.Time) int {
	return int(t.In(c.loc).Weekday())
}

// Month returns the month number for t, 1 through 12.
func (c *Calendar) Month(t time.Time) int {
	return int(t.In(c.loc).Month())
}

// DayOfMonth returns the day-of-month number for t, 1 through 31.
func (c *Calendar) DayOfMonth(t time.Time) int {
	return t.In(c.loc).Day()
}

// WeekOfYear returns the ISO-style week number for t (1-53): shift to the
// Thursday of the containing week and count weeks from that year's start.
func (c *Calendar) WeekOfYear(t time.Time) int {
	t = t.In(c.loc)
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	thursday := d.AddDate(0, 0, 4-dayNum)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(thursday.Sub(yearStart).Hours()/24) + 1
	return (days + 6) / 7
}
