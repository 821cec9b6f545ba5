package period

import (
	"testing"
	"time"

	"github.com/routinely/backend/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayBounds(t *testing.T) {
	cal := NewCalendar(nil)

	bounds := cal.DayBounds(time.Date(2024, time.March, 15, 13, 45, 12, 0, time.UTC))
	if !bounds.Start.Equal(date(2024, time.March, 15)) {
		t.Fatalf("unexpected start: %v", bounds.Start)
	}
	want := time.Date(2024, time.March, 15, 23, 59, 59, 999000000, time.UTC)
	if !bounds.End.Equal(want) {
		t.Fatalf("unexpected end: %v", bounds.End)
	}
}

func TestWeekBoundsStartsSunday(t *testing.T) {
	cal := NewCalendar(nil)

	// 2024-03-15 is a Friday; the containing week starts Sunday 2024-03-10.
	bounds := cal.WeekBounds(date(2024, time.March, 15))
	if !bounds.Start.Equal(date(2024, time.March, 10)) {
		t.Fatalf("unexpected start: %v", bounds.Start)
	}
	want := time.Date(2024, time.March, 16, 23, 59, 59, 999000000, time.UTC)
	if !bounds.End.Equal(want) {
		t.Fatalf("unexpected end: %v", bounds.End)
	}

	// A Sunday is its own week start.
	bounds = cal.WeekBounds(date(2024, time.March, 10))
	if !bounds.Start.Equal(date(2024, time.March, 10)) {
		t.Fatalf("sunday should start its own week, got %v", bounds.Start)
	}
}

func TestMonthBounds(t *testing.T) {
	cal := NewCalendar(nil)

	bounds := cal.MonthBounds(date(2024, time.February, 14))
	if !bounds.Start.Equal(date(2024, time.February, 1)) {
		t.Fatalf("unexpected start: %v", bounds.Start)
	}
	// 2024 is a leap year.
	want := time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC)
	if !bounds.End.Equal(want) {
		t.Fatalf("unexpected end: %v", bounds.End)
	}
}

func TestForFrequency(t *testing.T) {
	cal := NewCalendar(nil)
	day := date(2024, time.March, 15)

	if got := cal.ForFrequency(domain.FrequencyDaily, day); !got.Start.Equal(day) {
		t.Fatalf("daily start: %v", got.Start)
	}
	if got := cal.ForFrequency(domain.FrequencyWeekly, day); !got.Start.Equal(date(2024, time.March, 10)) {
		t.Fatalf("weekly start: %v", got.Start)
	}
	if got := cal.ForFrequency(domain.FrequencyMonthly, day); !got.Start.Equal(date(2024, time.March, 1)) {
		t.Fatalf("monthly start: %v", got.Start)
	}
}

func TestNextBucket(t *testing.T) {
	cal := NewCalendar(nil)
	start := date(2024, time.March, 10)

	if got := cal.NextBucket(domain.FrequencyDaily, start); !got.Equal(date(2024, time.March, 11)) {
		t.Fatalf("daily: %v", got)
	}
	if got := cal.NextBucket(domain.FrequencyWeekly, start); !got.Equal(date(2024, time.March, 17)) {
		t.Fatalf("weekly: %v", got)
	}
	if got := cal.NextBucket(domain.FrequencyMonthly, date(2024, time.March, 1)); !got.Equal(date(2024, time.April, 1)) {
		t.Fatalf("monthly: %v", got)
	}
}

func TestDayOfWeekSundayIsZero(t *testing.T) {
	cal := NewCalendar(nil)

	if got := cal.DayOfWeek(date(2024, time.March, 10)); got != 0 {
		t.Fatalf("expected 0 for Sunday, got %d", got)
	}
	if got := cal.DayOfWeek(date(2024, time.March, 16)); got != 6 {
		t.Fatalf("expected 6 for Saturday, got %d", got)
	}
}

func TestWeekOfYear(t *testing.T) {
	cal := NewCalendar(nil)

	cases := []struct {
		day  time.Time
		want int
	}{
		{date(2024, time.January, 1), 1},   // Monday
		{date(2024, time.January, 7), 1},   // Sunday of the same ISO week
		{date(2024, time.January, 8), 2},   // next Monday
		{date(2024, time.March, 4), 10},    // week 10
		{date(2023, time.January, 1), 52},  // Sunday belonging to 2022's last week
		{date(2024, time.December, 31), 1}, // Tuesday belonging to 2025 week 1
	}

	for _, tc := range cases {
		if got := cal.WeekOfYear(tc.day); got != tc.want {
			t.Errorf("WeekOfYear(%s) = %d, want %d", tc.day.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestStartOfDayRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	cal := NewCalendar(loc)

	// 22:30 UTC is already the next day in UTC+3.
	instant := time.Date(2024, time.March, 15, 22, 30, 0, 0, time.UTC)
	got := cal.StartOfDay(instant)
	want := time.Date(2024, time.March, 16, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
