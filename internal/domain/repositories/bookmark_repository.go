package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// BookmarkRepository defines the interface for facility bookmarks.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entities.FacilityBookmark) error
	GetByID(ctx context.Context, id string) (*entities.FacilityBookmark, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.FacilityBookmark, error)
	Update(ctx context.Context, bookmark *entities.FacilityBookmark) error
	Delete(ctx context.Context, id string) error
}
