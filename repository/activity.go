package repository

import (
	"context"
	"time"

	"github.com/routinely/backend/domain"
)

// ActivityFilter enumerates the supported activity predicates. All supplied
// fields are AND-ed together; zero values are ignored.
type ActivityFilter struct {
	UserID        string
	Frequency     domain.Frequency
	Category      string
	StartDateFrom *time.Time
	EndDateTo     *time.Time
}

type ActivityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id, userID string) error
	Categories(ctx context.Context, userID string) ([]string, error)
}
