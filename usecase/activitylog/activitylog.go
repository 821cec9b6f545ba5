package activitylog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/pkg/period"
	"github.com/routinely/backend/repository"
)

type UseCase struct {
	logs       repository.ActivityLogRepository
	activities repository.ActivityRepository
	exclusions repository.ExclusionRepository
	cal        *period.Calendar
	logger     *zap.Logger
}

func New(
	logs repository.ActivityLogRepository,
	activities repository.ActivityRepository,
	exclusions repository.ExclusionRepository,
	cal *period.Calendar,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cal == nil {
		cal = period.NewCalendar(nil)
	}
	return &UseCase{
		logs:       logs,
		activities: activities,
		exclusions: exclusions,
		cal:        cal,
		logger:     logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.LogFilter) ([]domain.ActivityLog, error) {
	return uc.logs.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id, userID string) (*domain.ActivityLog, error) {
	return uc.logs.GetByID(ctx, id, userID)
}

// Pending returns every log for the user that is not DONE yet.
func (uc *UseCase) Pending(ctx context.Context, filter repository.LogFilter) ([]domain.ActivityLog, error) {
	filter.NotStatus = domain.StatusDone
	return uc.logs.List(ctx, filter)
}

// TodayView merges due-today, overdue-and-open and completed-today entries,
// ordered by period end ascending.
func (uc *UseCase) TodayView(ctx context.Context, userID string) ([]domain.ActivityLog, error) {
	return uc.logs.TodayView(ctx, userID, uc.cal.Today())
}

// Create is the manual log-creation path. It verifies the parent activity
// and snapshots its current duration, but performs no period-uniqueness
// pre-check of its own; the storage constraint is the only guard there.
func (uc *UseCase) Create(ctx context.Context, userID, activityID string, start, end time.Time, status domain.LogStatus) (*domain.ActivityLog, error) {
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid status")
	}
	if end.Before(start) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "end date must not be before start date")
	}

	activity, err := uc.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	log := &domain.ActivityLog{
		ActivityID: activity.ID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		Duration:   activity.Duration,
	}
	return uc.logs.Create(ctx, log)
}

// UpdateStatus sets any status from any other. Entering DONE stamps the
// completion timestamp; leaving DONE keeps the old timestamp in place.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, userID string, status domain.LogStatus) (*domain.ActivityLog, error) {
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid status")
	}

	log, err := uc.logs.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if status == domain.StatusDone && log.Status != domain.StatusDone {
		now := time.Now().In(uc.cal.Location())
		log.CompletedAt = &now
	}
	log.Status = status

	if err := uc.logs.UpdateStatus(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (uc *UseCase) AddComment(ctx context.Context, logID, userID, text string) (*domain.ActivityLogComment, error) {
	if _, err := uc.logs.GetByID(ctx, logID, userID); err != nil {
		return nil, err
	}

	comment := &domain.ActivityLogComment{
		ActivityLogID: logID,
		Comment:       text,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	return uc.logs.AddComment(ctx, comment)
}

func (uc *UseCase) ListComments(ctx context.Context, logID, userID string) ([]domain.ActivityLogComment, error) {
	if _, err := uc.logs.GetByID(ctx, logID, userID); err != nil {
		return nil, err
	}
	return uc.logs.ListComments(ctx, logID)
}

func (uc *UseCase) DeleteComment(ctx context.Context, logID, userID, commentID string) error {
	if _, err := uc.logs.GetByID(ctx, logID, userID); err != nil {
		return err
	}
	return uc.logs.DeleteComment(ctx, logID, commentID)
}

func (uc *UseCase) ListExclusions(ctx context.Context, userID string) ([]domain.ExcludedInterval, error) {
	return uc.exclusions.ListByUser(ctx, userID)
}

func (uc *UseCase) AddExclusion(ctx context.Context, interval *domain.ExcludedInterval) (*domain.ExcludedInterval, error) {
	if err := interval.Validate(); err != nil {
		return nil, err
	}
	return uc.exclusions.Create(ctx, interval)
}

func (uc *UseCase) DeleteExclusion(ctx context.Context, id, userID string) error {
	return uc.exclusions.Delete(ctx, id, userID)
}
