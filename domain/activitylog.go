package domain

import "time"

// LogStatus is the lifecycle state of an activity log entry. Any status may
// be set from any other; there is no enforced forward-only transition.
type LogStatus string

const (
	StatusTodo       LogStatus = "TODO"
	StatusInProgress LogStatus = "IN_PROGRESS"
	StatusDone       LogStatus = "DONE"
)

// Valid reports whether s is a known log status.
func (s LogStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ActivityLog is one concrete occurrence of an activity within a single
// period (day, Sunday-start week, or month). At most one log exists per
// (activity, period) pair; the generator and a storage-level unique index
// uphold that together.
type ActivityLog struct {
	ID          string               `json:"id"`
	ActivityID  string               `json:"activity_id"`
	UserID      string               `json:"user_id"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Status      LogStatus            `json:"status"`
	Duration    *int                 `json:"duration,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Activity    *Activity            `json:"activity,omitempty"`
	Comments    []ActivityLogComment `json:"comments,omitempty"`
}

// RelevantToday reports whether the entry belongs in the today view for a
// day starting at startOfDay: still due, still open, or completed today.
func (l *ActivityLog) RelevantToday(startOfDay time.Time) bool {
	if l == nil {
		return false
	}
	if !l.EndDate.Before(startOfDay) {
		return true
	}
	if l.Status != StatusDone {
		return true
	}
	return l.CompletedAt != nil && !l.CompletedAt.Before(startOfDay)
}

// ActivityLogComment is a timestamped note attached to one log entry.
type ActivityLogComment struct {
	ID            string    `json:"id"`
	ActivityLogID string    `json:"activity_log_id"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate enforces the non-empty and maximum-length comment constraints.
func (c *ActivityLogComment) Validate() error {
	if c == nil || c.Comment == "" {
		return NewError(ErrCodeInvalid, "comment is required")
	}
	if len(c.Comment) > 1000 {
		return NewError(ErrCodeInvalid, "comment must be less than 1000 characters")
	}
	return nil
}
