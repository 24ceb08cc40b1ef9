package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// ContactRepository defines the interface for emergency contact
// operations. Deletion is soft: rows stay with is_active=false.
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.EmergencyContact) error
	GetByID(ctx context.Context, id string) (*entities.EmergencyContact, error)

	// ListActive returns a user's active contacts ordered primary-first
	// then by name ascending. The alert dispatcher notifies in this order.
	ListActive(ctx context.Context, userID string) ([]*entities.EmergencyContact, error)

	Update(ctx context.Context, contact *entities.EmergencyContact) error
	Deactivate(ctx context.Context, id string) error
}
