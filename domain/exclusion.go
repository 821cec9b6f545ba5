package domain

import "time"

// IntervalType names the calendar coordinate an exclusion applies to.
type IntervalType string

const (
	IntervalDayOfWeek  IntervalType = "DAY_OF_WEEK"
	IntervalWeekOfYear IntervalType = "WEEK_OF_YEAR"
	IntervalMonth      IntervalType = "MONTH"
)

// ExcludedInterval suppresses log generation for one frequency class on a
// recurring calendar coordinate. Unique per (user, frequency, type, value).
type ExcludedInterval struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Frequency Frequency    `json:"frequency"`
	Type      IntervalType `json:"type"`
	Value     int          `json:"value"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate enforces the type-dependent value range.
func (e *ExcludedInterval) Validate() error {
	if e == nil {
		return ErrInvalidPayload
	}
	if !e.Frequency.Valid() {
		return NewError(ErrCodeInvalid, "invalid frequency")
	}
	switch e.Type {
	case IntervalDayOfWeek:
		if e.Value < 0 || e.Value > 6 {
			return NewError(ErrCodeInvalid, "day of week must be between 0 (Sunday) and 6 (Saturday)")
		}
	case IntervalWeekOfYear:
		if e.Value < 1 || e.Value > 52 {
			return NewError(ErrCodeInvalid, "week of year must be between 1 and 52")
		}
	case IntervalMonth:
		if e.Value < 1 || e.Value > 12 {
			return NewError(ErrCodeInvalid, "month must be between 1 and 12")
		}
	default:
		return NewError(ErrCodeInvalid, "invalid interval type")
	}
	return nil
}
