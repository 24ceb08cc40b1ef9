package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// ReviewService handles business logic for facility reviews and reports
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// Create posts a review for a facility
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) error {
	if review.FacilityName == "" {
		return apperrors.NewValidationError("facility name is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.IsActive = true
	review.CreatedAt = time.Now()

	return s.repo.Create(ctx, review)
}

// ListByFacility returns a facility's active reviews, newest first
func (s *ReviewService) ListByFacility(ctx context.Context, facilityName string) ([]*entities.Review, error) {
	return s.repo.ListByFacility(ctx, facilityName)
}

// Report flags a review for moderation and deactivates it
func (s *ReviewService) Report(ctx context.Context, report *entities.Report) error {
	if report.Reason == "" {
		return apperrors.NewValidationError("report reason is required")
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.CreatedAt = time.Now()

	return s.repo.Report(ctx, report)
}
