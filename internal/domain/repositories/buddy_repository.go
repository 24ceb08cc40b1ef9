package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// BuddyRepository defines the interface for buddy-matching profiles.
type BuddyRepository interface {
	Upsert(ctx context.Context, profile *entities.BuddyProfile) error
	GetByUser(ctx context.Context, userID string) (*entities.BuddyProfile, error)

	// ListActiveExcept returns every active profile except the given user's
	ListActiveExcept(ctx context.Context, userID string) ([]*entities.BuddyProfile, error)

	Deactivate(ctx context.Context, userID string) error
}
