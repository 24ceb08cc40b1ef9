package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationAdapter_FindOverdue(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewMedicationAdapter(client)

	mock.ExpectQuery(`SELECT m.id, m.name, m.dosage, m.schedule_time`).
		WithArgs("user-1", 120).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "dosage", "schedule_time", "minutes_late"}).
			AddRow("m-1", "Metformin", "500mg", "08:00", 185.5).
			AddRow("m-2", "Lisinopril", "10mg", "09:00", 125.0))

	overdue, err := adapter.FindOverdue(context.Background(), "user-1", 120)

	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, "m-1", overdue[0].MedicationID)
	assert.Equal(t, "Metformin", overdue[0].Name)
	assert.InDelta(t, 185.5, overdue[0].MinutesLate, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicationAdapter_FindOverdue_Empty(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewMedicationAdapter(client)

	mock.ExpectQuery(`SELECT m.id, m.name, m.dosage, m.schedule_time`).
		WithArgs("user-1", 120).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "dosage", "schedule_time", "minutes_late"}))

	overdue, err := adapter.FindOverdue(context.Background(), "user-1", 120)

	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestMedicationAdapter_ListUserIDsWithActiveMedications(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewMedicationAdapter(client)

	mock.ExpectQuery(`SELECT DISTINCT "user_id" FROM "medications"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow("user-1").
			AddRow("user-2"))

	userIDs, err := adapter.ListUserIDsWithActiveMedications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, userIDs)
}
