package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for reviews and reports.
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByFacility(ctx context.Context, facilityName string) ([]*entities.Review, error)

	// Report files a report and deactivates the reported review.
	Report(ctx context.Context, report *entities.Report) error
}
