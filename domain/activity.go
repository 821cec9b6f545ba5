package domain

import "time"

// Frequency determines the period granularity of a recurring activity.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// Frequencies lists every supported frequency in generation order.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// Valid reports whether f is one of the supported frequency classes.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Activity is a user-owned recurring activity definition. Deleting an
// activity leaves its existing logs in place as historical records.
type Activity struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Frequency   Frequency  `json:"frequency"`
	Duration    *int       `json:"duration,omitempty"`
	Category    *string    `json:"category,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EligibleAt reports whether the activity is active for a period beginning
// at periodStart. Both bounds are inclusive boundary dates compared with
// time-of-day stripped: an activity is eligible on its exact start date and
// its exact end date.
func (a *Activity) EligibleAt(periodStart time.Time) bool {
	if a == nil {
		return false
	}
	day := truncateToDay(periodStart)
	if a.StartDate != nil && day.Before(truncateToDay(*a.StartDate)) {
		return false
	}
	if a.EndDate != nil && day.After(truncateToDay(*a.EndDate)) {
		return false
	}
	return true
}

// Validate checks the field constraints shared by create and update paths.
func (a *Activity) Validate() error {
	if a == nil {
		return ErrInvalidPayload
	}
	if a.Title == "" || len(a.Title) > 200 {
		return NewError(ErrCodeInvalid, "title must be between 1 and 200 characters")
	}
	if len(a.Description) > 1000 {
		return NewError(ErrCodeInvalid, "description must be less than 1000 characters")
	}
	if !a.Frequency.Valid() {
		return NewError(ErrCodeInvalid, "invalid frequency")
	}
	if a.Duration != nil && *a.Duration <= 0 {
		return NewError(ErrCodeInvalid, "duration must be a positive number of minutes")
	}
	if a.Category != nil && len(*a.Category) > 100 {
		return NewError(ErrCodeInvalid, "category must be less than 100 characters")
	}
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		return NewError(ErrCodeInvalid, "end date must not be before start date")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
