package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// ContactAdapter implements ContactRepository
type ContactAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewContactAdapter creates a new emergency contact adapter
func NewContactAdapter(client *postgres.Client) repositories.ContactRepository {
	return &ContactAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var contactColumns = []interface{}{
	"id", "user_id", "name", "relationship", "phone_number", "email",
	"is_primary", "alert_preferences", "is_active", "created_at", "updated_at",
}

// Create creates a new emergency contact
func (a *ContactAdapter) Create(ctx context.Context, contact *entities.EmergencyContact) error {
	prefs, err := marshalPreferences(contact.AlertPreferences)
	if err != nil {
		return apperrors.NewInternalError("failed to encode alert preferences", err)
	}

	record := goqu.Record{
		"id":                contact.ID,
		"user_id":           contact.UserID,
		"name":              contact.Name,
		"relationship":      contact.Relationship,
		"phone_number":      contact.PhoneNumber,
		"email":             sql.NullString{String: contact.Email, Valid: contact.Email != ""},
		"is_primary":        contact.IsPrimary,
		"alert_preferences": prefs,
		"is_active":         contact.IsActive,
		"created_at":        contact.CreatedAt,
		"updated_at":        contact.UpdatedAt,
	}

	query, args, err := a.db.Insert("emergency_contacts").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build contact insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create emergency contact", err)
	}

	return nil
}

// GetByID retrieves an emergency contact by ID
func (a *ContactAdapter) GetByID(ctx context.Context, id string) (*entities.EmergencyContact, error) {
	query, args, err := a.db.Select(contactColumns...).
		From("emergency_contacts").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build contact query", err)
	}

	contact, err := scanContact(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("emergency contact %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get emergency contact", err)
	}

	return contact, nil
}

// ListActive returns a user's active contacts, primary first, then by
// name ascending. The alert dispatcher notifies in exactly this order.
func (a *ContactAdapter) ListActive(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	query, args, err := a.db.Select(contactColumns...).
		From("emergency_contacts").
		Where(goqu.Ex{"user_id": userID, "is_active": true}).
		Order(goqu.I("is_primary").Desc(), goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build contact list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list emergency contacts", err)
	}
	defer rows.Close()

	var contacts []*entities.EmergencyContact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan emergency contact", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate emergency contacts", err)
	}

	return contacts, nil
}

// Update updates an emergency contact
func (a *ContactAdapter) Update(ctx context.Context, contact *entities.EmergencyContact) error {
	contact.UpdatedAt = time.Now()

	prefs, err := marshalPreferences(contact.AlertPreferences)
	if err != nil {
		return apperrors.NewInternalError("failed to encode alert preferences", err)
	}

	record := goqu.Record{
		"name":              contact.Name,
		"relationship":      contact.Relationship,
		"phone_number":      contact.PhoneNumber,
		"email":             sql.NullString{String: contact.Email, Valid: contact.Email != ""},
		"is_primary":        contact.IsPrimary,
		"alert_preferences": prefs,
		"is_active":         contact.IsActive,
		"updated_at":        contact.UpdatedAt,
	}

	query, args, err := a.db.Update("emergency_contacts").
		Set(record).
		Where(goqu.Ex{"id": contact.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build contact update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update emergency contact", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("emergency contact %s not found", contact.ID))
	}

	return nil
}

// Deactivate soft-deletes an emergency contact
func (a *ContactAdapter) Deactivate(ctx context.Context, id string) error {
	query, args, err := a.db.Update("emergency_contacts").
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build contact deactivate query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to deactivate emergency contact", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("emergency contact %s not found", id))
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*entities.EmergencyContact, error) {
	contact := &entities.EmergencyContact{}
	var email sql.NullString
	var prefs []byte

	err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.Name,
		&contact.Relationship,
		&contact.PhoneNumber,
		&email,
		&contact.IsPrimary,
		&prefs,
		&contact.IsActive,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact.Email = email.String
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &contact.AlertPreferences); err != nil {
			return nil, fmt.Errorf("failed to decode alert preferences: %w", err)
		}
	}

	return contact, nil
}

func marshalPreferences(prefs map[string]interface{}) ([]byte, error) {
	if prefs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(prefs)
}
