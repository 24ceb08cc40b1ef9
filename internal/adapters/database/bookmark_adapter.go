package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// BookmarkAdapter implements BookmarkRepository
type BookmarkAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookmarkAdapter creates a new facility bookmark adapter
func NewBookmarkAdapter(client *postgres.Client) repositories.BookmarkRepository {
	return &BookmarkAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var bookmarkColumns = []interface{}{
	"id", "user_id", "name", "category", "address", "latitude", "longitude",
	"notes", "created_at",
}

// Create creates a new bookmark
func (a *BookmarkAdapter) Create(ctx context.Context, bookmark *entities.FacilityBookmark) error {
	record := goqu.Record{
		"id":         bookmark.ID,
		"user_id":    bookmark.UserID,
		"name":       bookmark.Name,
		"category":   bookmark.Category,
		"address":    sql.NullString{String: bookmark.Address, Valid: bookmark.Address != ""},
		"latitude":   bookmark.Latitude,
		"longitude":  bookmark.Longitude,
		"notes":      sql.NullString{String: bookmark.Notes, Valid: bookmark.Notes != ""},
		"created_at": bookmark.CreatedAt,
	}

	query, args, err := a.db.Insert("facility_bookmarks").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build bookmark insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create bookmark", err)
	}

	return nil
}

// GetByID retrieves a bookmark by ID
func (a *BookmarkAdapter) GetByID(ctx context.Context, id string) (*entities.FacilityBookmark, error) {
	query, args, err := a.db.Select(bookmarkColumns...).
		From("facility_bookmarks").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bookmark query", err)
	}

	bookmark, err := scanBookmark(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("bookmark %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get bookmark", err)
	}

	return bookmark, nil
}

// ListByUser returns a user's bookmarks, newest first
func (a *BookmarkAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.FacilityBookmark, error) {
	query, args, err := a.db.Select(bookmarkColumns...).
		From("facility_bookmarks").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bookmark list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookmarks", err)
	}
	defer rows.Close()

	var bookmarks []*entities.FacilityBookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan bookmark", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookmarks", err)
	}

	return bookmarks, nil
}

// Update updates a bookmark
func (a *BookmarkAdapter) Update(ctx context.Context, bookmark *entities.FacilityBookmark) error {
	record := goqu.Record{
		"name":      bookmark.Name,
		"category":  bookmark.Category,
		"address":   sql.NullString{String: bookmark.Address, Valid: bookmark.Address != ""},
		"latitude":  bookmark.Latitude,
		"longitude": bookmark.Longitude,
		"notes":     sql.NullString{String: bookmark.Notes, Valid: bookmark.Notes != ""},
	}

	query, args, err := a.db.Update("facility_bookmarks").
		Set(record).
		Where(goqu.Ex{"id": bookmark.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build bookmark update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update bookmark", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("bookmark %s not found", bookmark.ID))
	}

	return nil
}

// Delete removes a bookmark
func (a *BookmarkAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("facility_bookmarks").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build bookmark delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete bookmark", err)
	}

	return nil
}

func scanBookmark(row rowScanner) (*entities.FacilityBookmark, error) {
	bookmark := &entities.FacilityBookmark{}
	var address, notes sql.NullString

	err := row.Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.Name,
		&bookmark.Category,
		&address,
		&bookmark.Latitude,
		&bookmark.Longitude,
		&notes,
		&bookmark.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	bookmark.Address = address.String
	bookmark.Notes = notes.String
	return bookmark, nil
}
