package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

func setupMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return postgres.NewClientWithDB(mockDB), mock
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "name", "relationship", "phone_number", "email",
		"is_primary", "alert_preferences", "is_active", "created_at", "updated_at",
	})
}

func TestContactAdapter_ListActive_OrderAndDecoding(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewContactAdapter(client)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "emergency_contacts" WHERE .+ ORDER BY "is_primary" DESC, "name" ASC`).
		WillReturnRows(contactRows().
			AddRow("c-1", "user-1", "Alice", "daughter", "+6591110000", "alice@example.com",
				true, []byte(`{"sms":true}`), true, now, now).
			AddRow("c-2", "user-1", "Ben", "son", "+6592220000", nil,
				false, []byte(`{}`), true, now, now))

	contacts, err := adapter.ListActive(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alice", contacts[0].Name)
	assert.True(t, contacts[0].IsPrimary)
	assert.Equal(t, map[string]interface{}{"sms": true}, contacts[0].AlertPreferences)
	assert.Equal(t, "Ben", contacts[1].Name)
	assert.Empty(t, contacts[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewContactAdapter(client)

	mock.ExpectQuery(`SELECT .+ FROM "emergency_contacts"`).
		WillReturnRows(contactRows())

	contact, err := adapter.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, contact)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestContactAdapter_Deactivate_MissingRow(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewContactAdapter(client)

	mock.ExpectExec(`UPDATE "emergency_contacts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Deactivate(context.Background(), "missing")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestContactAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewContactAdapter(client)

	mock.ExpectExec(`INSERT INTO "emergency_contacts"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := adapter.Create(context.Background(), &entities.EmergencyContact{
		ID:          "c-1",
		UserID:      "user-1",
		Name:        "Alice",
		PhoneNumber: "+6591110000",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
