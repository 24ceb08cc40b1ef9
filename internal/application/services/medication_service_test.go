package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
	apperrors "github.com/circleage/backend/pkg/errors"
)

func TestMedicationService_Create_FillsDefaults(t *testing.T) {
	repo := &mockMedicationRepo{}
	service := services.NewMedicationService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Medication")).Return(nil)

	med := &entities.Medication{
		UserID:       "user-1",
		Name:         "Metformin",
		Dosage:       "500mg",
		ScheduleTime: "08:30",
	}
	err := service.Create(context.Background(), med)

	require.NoError(t, err)
	assert.NotEmpty(t, med.ID)
	assert.True(t, med.IsActive)
	assert.False(t, med.CreatedAt.IsZero())
}

func TestMedicationService_Create_RejectsBadScheduleTime(t *testing.T) {
	repo := &mockMedicationRepo{}
	service := services.NewMedicationService(repo)

	for _, bad := range []string{"", "8:30", "25:00", "08:61", "0830", "ab:cd"} {
		err := service.Create(context.Background(), &entities.Medication{
			UserID:       "user-1",
			Name:         "Metformin",
			ScheduleTime: bad,
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "schedule %q", bad)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicationService_LogDose(t *testing.T) {
	repo := &mockMedicationRepo{}
	service := services.NewMedicationService(repo)

	repo.On("LogDose", mock.Anything, mock.AnythingOfType("*entities.MedicationLog")).Return(nil)

	entry, err := service.LogDose(context.Background(), "m-1", "user-1", entities.MedicationTaken)

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, entities.MedicationTaken, entry.Status)
	assert.False(t, entry.TakenAt.IsZero())
}

func TestMedicationService_LogDose_RejectsUnknownStatus(t *testing.T) {
	repo := &mockMedicationRepo{}
	service := services.NewMedicationService(repo)

	_, err := service.LogDose(context.Background(), "m-1", "user-1", entities.MedicationLogStatus("forgot"))

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	repo.AssertNotCalled(t, "LogDose", mock.Anything, mock.Anything)
}
