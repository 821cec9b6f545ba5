package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/routinely/backend/domain"
	"github.com/routinely/backend/repository"
)

// Grouped buckets a user's activities by frequency class.
type Grouped struct {
	Daily   []domain.Activity `json:"daily"`
	Weekly  []domain.Activity `json:"weekly"`
	Monthly []domain.Activity `json:"monthly"`
}

type UseCase struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		logger:     logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	return uc.activities.List(ctx, filter)
}

// Get returns the activity only when it belongs to the requesting user.
func (uc *UseCase) Get(ctx context.Context, id, userID string) (*domain.Activity, error) {
	activity, err := uc.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.UserID != userID {
		return nil, domain.ErrActivityNotFound
	}
	return activity, nil
}

func (uc *UseCase) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}
	if activity.Frequency == "" {
		activity.Frequency = domain.FrequencyDaily
	}
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	return uc.activities.Create(ctx, activity)
}

// Update replaces the mutable fields of an activity. Existing logs keep the
// duration snapshot they were created with.
func (uc *UseCase) Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	if err := uc.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes the definition; logs generated from it are retained as
// historical records.
func (uc *UseCase) Delete(ctx context.Context, id, userID string) error {
	return uc.activities.Delete(ctx, id, userID)
}

func (uc *UseCase) Categories(ctx context.Context, userID string) ([]string, error) {
	return uc.activities.Categories(ctx, userID)
}

func (uc *UseCase) GroupedByFrequency(ctx context.Context, userID string) (*Grouped, error) {
	activities, err := uc.activities.List(ctx, repository.ActivityFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	grouped := &Grouped{
		Daily:   []domain.Activity{},
		Weekly:  []domain.Activity{},
		Monthly: []domain.Activity{},
	}
	for _, a := range activities {
		switch a.Frequency {
		case domain.FrequencyDaily:
			grouped.Daily = append(grouped.Daily, a)
		case domain.FrequencyWeekly:
			grouped.Weekly = append(grouped.Weekly, a)
		case domain.FrequencyMonthly:
			grouped.Monthly = append(grouped.Monthly, a)
		}
	}
	return grouped, nil
}
