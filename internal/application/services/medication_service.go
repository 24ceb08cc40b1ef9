package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// MedicationService handles business logic for medications and dose logs
type MedicationService struct {
	repo repositories.MedicationRepository
}

// NewMedicationService creates a new medication service
func NewMedicationService(repo repositories.MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

// Create registers a new medication schedule
func (s *MedicationService) Create(ctx context.Context, medication *entities.Medication) error {
	if medication.Name == "" {
		return apperrors.NewValidationError("medication name is required")
	}
	if !validScheduleTime(medication.ScheduleTime) {
		return apperrors.NewValidationError("schedule_time must be HH:MM in 24h format")
	}

	if medication.ID == "" {
		medication.ID = uuid.New().String()
	}
	medication.IsActive = true
	medication.CreatedAt = time.Now()
	medication.UpdatedAt = medication.CreatedAt

	return s.repo.Create(ctx, medication)
}

// GetByID retrieves a medication by ID
func (s *MedicationService) GetByID(ctx context.Context, id string) (*entities.Medication, error) {
	return s.repo.GetByID(ctx, id)
}

// ListActive returns a user's active medications
func (s *MedicationService) ListActive(ctx context.Context, userID string) ([]*entities.Medication, error) {
	return s.repo.ListActive(ctx, userID)
}

// Update updates a medication schedule
func (s *MedicationService) Update(ctx context.Context, medication *entities.Medication) error {
	if !validScheduleTime(medication.ScheduleTime) {
		return apperrors.NewValidationError("schedule_time must be HH:MM in 24h format")
	}
	return s.repo.Update(ctx, medication)
}

// Deactivate soft-deletes a medication
func (s *MedicationService) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

// LogDose records a taken or skipped dose for today
func (s *MedicationService) LogDose(ctx context.Context, medicationID, userID string, status entities.MedicationLogStatus) (*entities.MedicationLog, error) {
	if status != entities.MedicationTaken && status != entities.MedicationSkipped {
		return nil, apperrors.NewValidationError("status must be taken or skipped")
	}

	entry := &entities.MedicationLog{
		ID:           uuid.New().String(),
		MedicationID: medicationID,
		UserID:       userID,
		Status:       status,
		TakenAt:      time.Now(),
	}
	if err := s.repo.LogDose(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// validScheduleTime accepts "HH:MM" on a 24h clock
func validScheduleTime(v string) bool {
	if len(v) != 5 || v[2] != ':' {
		return false
	}
	hh := int(v[0]-'0')*10 + int(v[1]-'0')
	mm := int(v[3]-'0')*10 + int(v[4]-'0')
	for _, c := range []byte{v[0], v[1], v[3], v[4]} {
		if c < '0' || c > '9' {
			return false
		}
	}
	return hh < 24 && mm < 60
}
