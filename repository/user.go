package repository

import (
	"context"

	"github.com/routinely/backend/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListIDs(ctx context.Context) ([]string, error)
}
