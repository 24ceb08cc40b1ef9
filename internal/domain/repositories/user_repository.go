package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// UserRepository defines the interface for user operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}
