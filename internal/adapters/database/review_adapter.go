package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// ReviewAdapter implements ReviewRepository
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	record := goqu.Record{
		"id":            review.ID,
		"user_id":       review.UserID,
		"facility_name": review.FacilityName,
		"rating":        review.Rating,
		"comment":       sql.NullString{String: review.Comment, Valid: review.Comment != ""},
		"is_active":     review.IsActive,
		"created_at":    review.CreatedAt,
	}

	query, args, err := a.db.Insert("reviews").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	return nil
}

// ListByFacility returns the active reviews for a facility, newest first
func (a *ReviewAdapter) ListByFacility(ctx context.Context, facilityName string) ([]*entities.Review, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "facility_name", "rating", "comment", "is_active", "created_at",
	).From("reviews").
		Where(goqu.Ex{"facility_name": facilityName, "is_active": true}).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	defer rows.Close()

	var reviews []*entities.Review
	for rows.Next() {
		review := &entities.Review{}
		var comment sql.NullString
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.FacilityName,
			&review.Rating,
			&comment,
			&review.IsActive,
			&review.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		review.Comment = comment.String
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate reviews", err)
	}

	return reviews, nil
}

// Report files a report and deactivates the reported review. The two
// statements are issued back to back without a transaction; a report
// row without a deactivated review is tolerated by the moderation
// sweep.
func (a *ReviewAdapter) Report(ctx context.Context, report *entities.Report) error {
	insert, args, err := a.db.Insert("reports").Rows(goqu.Record{
		"id":         report.ID,
		"review_id":  report.ReviewID,
		"user_id":    report.UserID,
		"reason":     report.Reason,
		"created_at": report.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build report insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, insert, args...); err != nil {
		return apperrors.NewInternalError("failed to file review report", err)
	}

	deactivate, args, err := a.db.Update("reviews").
		Set(goqu.Record{"is_active": false}).
		Where(goqu.Ex{"id": report.ReviewID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review deactivate query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, deactivate, args...); err != nil {
		return apperrors.NewInternalError("failed to deactivate reported review", err)
	}

	return nil
}
