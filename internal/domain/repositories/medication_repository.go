package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// MedicationRepository defines the interface for medications and their
// taken-logs.
type MedicationRepository interface {
	Create(ctx context.Context, medication *entities.Medication) error
	GetByID(ctx context.Context, id string) (*entities.Medication, error)
	ListActive(ctx context.Context, userID string) ([]*entities.Medication, error)
	Update(ctx context.Context, medication *entities.Medication) error
	Deactivate(ctx context.Context, id string) error

	// LogDose records a taken or skipped dose
	LogDose(ctx context.Context, log *entities.MedicationLog) error

	// FindOverdue returns active medications scheduled earlier today with
	// no taken-log for today, more than thresholdMinutes late.
	FindOverdue(ctx context.Context, userID string, thresholdMinutes int) ([]*entities.OverdueMedication, error)

	// ListUserIDsWithActiveMedications returns users the adherence sweep
	// should visit.
	ListUserIDsWithActiveMedications(ctx context.Context) ([]string, error)
}
