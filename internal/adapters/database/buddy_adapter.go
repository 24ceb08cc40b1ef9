package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// BuddyAdapter implements BuddyRepository
type BuddyAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBuddyAdapter creates a new buddy profile adapter
func NewBuddyAdapter(client *postgres.Client) repositories.BuddyRepository {
	return &BuddyAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Upsert creates or replaces a user's buddy profile
func (a *BuddyAdapter) Upsert(ctx context.Context, profile *entities.BuddyProfile) error {
	profile.UpdatedAt = time.Now()

	record := goqu.Record{
		"user_id":        profile.UserID,
		"interests":      pq.StringArray(profile.Interests),
		"preferred_area": sql.NullString{String: profile.PreferredArea, Valid: profile.PreferredArea != ""},
		"bio":            sql.NullString{String: profile.Bio, Valid: profile.Bio != ""},
		"is_active":      profile.IsActive,
		"updated_at":     profile.UpdatedAt,
	}

	query, args, err := a.db.Insert("buddy_profiles").
		Rows(record).
		OnConflict(goqu.DoUpdate("user_id", record)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build buddy upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert buddy profile", err)
	}

	return nil
}

// GetByUser retrieves a user's buddy profile
func (a *BuddyAdapter) GetByUser(ctx context.Context, userID string) (*entities.BuddyProfile, error) {
	query, args, err := a.db.Select(
		"user_id", "interests", "preferred_area", "bio", "is_active", "updated_at",
	).From("buddy_profiles").
		Where(goqu.Ex{"user_id": userID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build buddy profile query", err)
	}

	profile, err := scanBuddyProfile(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("buddy profile not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get buddy profile", err)
	}

	return profile, nil
}

// ListActiveExcept returns every active profile except the given user's
func (a *BuddyAdapter) ListActiveExcept(ctx context.Context, userID string) ([]*entities.BuddyProfile, error) {
	query, args, err := a.db.Select(
		"user_id", "interests", "preferred_area", "bio", "is_active", "updated_at",
	).From("buddy_profiles").
		Where(goqu.Ex{"is_active": true}, goqu.C("user_id").Neq(userID)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build buddy list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list buddy profiles", err)
	}
	defer rows.Close()

	var profiles []*entities.BuddyProfile
	for rows.Next() {
		profile, err := scanBuddyProfile(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan buddy profile", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate buddy profiles", err)
	}

	return profiles, nil
}

// Deactivate opts a user out of matching
func (a *BuddyAdapter) Deactivate(ctx context.Context, userID string) error {
	query, args, err := a.db.Update("buddy_profiles").
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"user_id": userID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build buddy deactivate query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to deactivate buddy profile", err)
	}

	return nil
}

func scanBuddyProfile(row rowScanner) (*entities.BuddyProfile, error) {
	profile := &entities.BuddyProfile{}
	var interests pq.StringArray
	var area, bio sql.NullString

	err := row.Scan(
		&profile.UserID,
		&interests,
		&area,
		&bio,
		&profile.IsActive,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Interests = []string(interests)
	profile.PreferredArea = area.String
	profile.Bio = bio.String
	return profile, nil
}
