package generator

import (
	"time"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/pkg/period"
)

// IsSuppressed reports whether generation for the given frequency class is
// suppressed on date by the user's exclusion rules. Pure function of
// (frequency, date, rule set).
func IsSuppressed(cal *period.Calendar, freq domain.Frequency, date time.Time, rules []domain.ExcludedInterval) bool {
	switch freq {
	case domain.FrequencyDaily:
		return matchesRule(rules, freq, domain.IntervalDayOfWeek, cal.DayOfWeek(date))
	case domain.FrequencyWeekly:
		return matchesRule(rules, freq, domain.IntervalWeekOfYear, cal.WeekOfYear(date))
	case domain.FrequencyMonthly:
		return matchesRule(rules, freq, domain.IntervalMonth, cal.Month(date))
	}
	return false
}

func matchesRule(rules []domain.ExcludedInterval, freq domain.Frequency, kind domain.IntervalType, value int) bool {
	for _, rule := range rules {
		if rule.Frequency == freq && rule.Type == kind && rule.Value == value {
			return true
		}
	}
	return false
}
