package repository

import (
	"context"

	"github.com/routinely/backend/domain"
)

type ExclusionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.ExcludedInterval, error)
	Create(ctx context.Context, interval *domain.ExcludedInterval) (*domain.ExcludedInterval, error)
	Delete(ctx context.Context, id, userID string) error
}
