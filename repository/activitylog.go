package repository

import (
	"context"
	"time"

	"github.com/routinely/backend/domain"
)

// LogOrder selects the result ordering for log queries.
type LogOrder string

const (
	OrderStartDesc LogOrder = "start_desc"
	OrderEndAsc    LogOrder = "end_asc"
)

// LogFilter enumerates the supported activity-log predicates. All supplied
// fields are AND-ed together; zero values are ignored.
type LogFilter struct {
	UserID        string
	ActivityID    string
	Status        domain.LogStatus
	NotStatus     domain.LogStatus
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	EndDateTo     *time.Time
	Order         LogOrder
}

type ActivityLogRepository interface {
	GetByID(ctx context.Context, id, userID string) (*domain.ActivityLog, error)
	List(ctx context.Context, filter LogFilter) ([]domain.ActivityLog, error)
	Create(ctx context.Context, log *domain.ActivityLog) (*domain.ActivityLog, error)
	UpdateStatus(ctx context.Context, log *domain.ActivityLog) error
	// ExistsInRange reports whether any log for the activity has a period
	// start inside the half-open range [from, to).
	ExistsInRange(ctx context.Context, activityID string, from, to time.Time) (bool, error)
	// ExistsForUserInRange is the pre-flight probe for manual generation:
	// any log owned by the user with a period start inside [from, to).
	ExistsForUserInRange(ctx context.Context, userID string, from, to time.Time) (bool, error)
	// TodayView returns the merged due/open/completed-today projection,
	// ordered by period end ascending.
	TodayView(ctx context.Context, userID string, startOfDay time.Time) ([]domain.ActivityLog, error)

	AddComment(ctx context.Context, comment *domain.ActivityLogComment) (*domain.ActivityLogComment, error)
	ListComments(ctx context.Context, logID string) ([]domain.ActivityLogComment, error)
	DeleteComment(ctx context.Context, logID, commentID string) error
}
