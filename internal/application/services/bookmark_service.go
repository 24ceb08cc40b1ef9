package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
	"github.com/circleage/backend/pkg/geo"
)

// BookmarkService handles business logic for saved facilities
type BookmarkService struct {
	repo repositories.BookmarkRepository
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo repositories.BookmarkRepository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// Create saves a facility bookmark
func (s *BookmarkService) Create(ctx context.Context, bookmark *entities.FacilityBookmark) error {
	if bookmark.Name == "" {
		return apperrors.NewValidationError("bookmark name is required")
	}
	if !geo.WithinSingapore(bookmark.Latitude, bookmark.Longitude) {
		return apperrors.NewValidationError("bookmark coordinates are outside Singapore bounds")
	}

	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}
	bookmark.CreatedAt = time.Now()

	return s.repo.Create(ctx, bookmark)
}

// GetByID retrieves a bookmark by ID
func (s *BookmarkService) GetByID(ctx context.Context, id string) (*entities.FacilityBookmark, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser returns a user's bookmarks
func (s *BookmarkService) ListByUser(ctx context.Context, userID string) ([]*entities.FacilityBookmark, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update updates a bookmark
func (s *BookmarkService) Update(ctx context.Context, bookmark *entities.FacilityBookmark) error {
	if !geo.WithinSingapore(bookmark.Latitude, bookmark.Longitude) {
		return apperrors.NewValidationError("bookmark coordinates are outside Singapore bounds")
	}
	return s.repo.Update(ctx, bookmark)
}

// Delete removes a bookmark
func (s *BookmarkService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
