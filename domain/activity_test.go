package domain

import (
	"strings"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActivityValidate(t *testing.T) {
	base := func() Activity {
		return Activity{Title: "Read", Frequency: FrequencyDaily}
	}

	if err := (&Activity{Title: "Read", Frequency: FrequencyDaily}).Validate(); err != nil {
		t.Fatalf("valid activity rejected: %v", err)
	}

	a := base()
	a.Title = ""
	if err := a.Validate(); err == nil {
		t.Error("empty title accepted")
	}

	a = base()
	a.Title = strings.Repeat("x", 201)
	if err := a.Validate(); err == nil {
		t.Error("oversized title accepted")
	}

	a = base()
	a.Frequency = "HOURLY"
	if err := a.Validate(); err == nil {
		t.Error("unknown frequency accepted")
	}

	a = base()
	zero := 0
	a.Duration = &zero
	if err := a.Validate(); err == nil {
		t.Error("zero duration accepted")
	}

	a = base()
	start := day(2024, time.March, 15)
	end := day(2024, time.March, 14)
	a.StartDate = &start
	a.EndDate = &end
	if err := a.Validate(); err == nil {
		t.Error("inverted date range accepted")
	}
}

func TestActivityEligibleAt(t *testing.T) {
	start := day(2024, time.March, 10)
	end := day(2024, time.March, 20)
	a := &Activity{Title: "Read", Frequency: FrequencyDaily, StartDate: &start, EndDate: &end}

	if !a.EligibleAt(day(2024, time.March, 10)) {
		t.Error("start date itself should be eligible")
	}
	if !a.EligibleAt(day(2024, time.March, 20)) {
		t.Error("end date itself should be eligible")
	}
	if a.EligibleAt(day(2024, time.March, 9)) {
		t.Error("day before start should not be eligible")
	}
	if a.EligibleAt(day(2024, time.March, 21)) {
		t.Error("day after end should not be eligible")
	}

	// Time-of-day on the stored bounds must not matter.
	noon := time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)
	a = &Activity{Title: "Read", Frequency: FrequencyDaily, StartDate: &noon}
	if !a.EligibleAt(day(2024, time.March, 10)) {
		t.Error("start date with a time component should still match its day")
	}

	unbounded := &Activity{Title: "Read", Frequency: FrequencyDaily}
	if !unbounded.EligibleAt(day(1999, time.January, 1)) {
		t.Error("activity without bounds should always be eligible")
	}
}

func TestExcludedIntervalValidate(t *testing.T) {
	cases := []struct {
		name    string
		rule    ExcludedInterval
		wantErr bool
	}{
		{"sunday", ExcludedInterval{Frequency: FrequencyDaily, Type: IntervalDayOfWeek, Value: 0}, false},
		{"saturday", ExcludedInterval{Frequency: FrequencyDaily, Type: IntervalDayOfWeek, Value: 6}, false},
		{"weekday out of range", ExcludedInterval{Frequency: FrequencyDaily, Type: IntervalDayOfWeek, Value: 7}, true},
		{"week 1", ExcludedInterval{Frequency: FrequencyWeekly, Type: IntervalWeekOfYear, Value: 1}, false},
		{"week 52", ExcludedInterval{Frequency: FrequencyWeekly, Type: IntervalWeekOfYear, Value: 52}, false},
		{"week 0", ExcludedInterval{Frequency: FrequencyWeekly, Type: IntervalWeekOfYear, Value: 0}, true},
		{"week 53", ExcludedInterval{Frequency: FrequencyWeekly, Type: IntervalWeekOfYear, Value: 53}, true},
		{"december", ExcludedInterval{Frequency: FrequencyMonthly, Type: IntervalMonth, Value: 12}, false},
		{"month 13", ExcludedInterval{Frequency: FrequencyMonthly, Type: IntervalMonth, Value: 13}, true},
		{"unknown type", ExcludedInterval{Frequency: FrequencyDaily, Type: "HOLIDAY", Value: 1}, true},
		{"unknown frequency", ExcludedInterval{Frequency: "HOURLY", Type: IntervalMonth, Value: 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRelevantToday(t *testing.T) {
	startOfDay := day(2024, time.March, 15)
	yesterday := day(2024, time.March, 14)
	thisMorning := startOfDay.Add(8 * time.Hour)

	cases := []struct {
		name string
		log  ActivityLog
		want bool
	}{
		{"still due", ActivityLog{EndDate: startOfDay.Add(time.Hour), Status: StatusDone}, true},
		{"overdue but open", ActivityLog{EndDate: yesterday, Status: StatusInProgress}, true},
		{"completed today", ActivityLog{EndDate: yesterday, Status: StatusDone, CompletedAt: &thisMorning}, true},
		{"completed yesterday", ActivityLog{EndDate: yesterday, Status: StatusDone, CompletedAt: &yesterday}, false},
		{"done without timestamp", ActivityLog{EndDate: yesterday, Status: StatusDone}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.log.RelevantToday(startOfDay); got != tc.want {
				t.Fatalf("RelevantToday = %v, want %v", got, tc.want)
			}
		})
	}
}
