package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// ContactService handles business logic for emergency contacts
type ContactService struct {
	repo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(repo repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Create registers a new emergency contact
func (s *ContactService) Create(ctx context.Context, contact *entities.EmergencyContact) error {
	if contact.Name == "" {
		return apperrors.NewValidationError("contact name is required")
	}
	if contact.PhoneNumber == "" {
		return apperrors.NewValidationError("contact phone number is required")
	}

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.IsActive = true
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt

	return s.repo.Create(ctx, contact)
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, id string) (*entities.EmergencyContact, error) {
	return s.repo.GetByID(ctx, id)
}

// ListActive returns a user's active contacts, primary first then by name
func (s *ContactService) ListActive(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	return s.repo.ListActive(ctx, userID)
}

// Update updates a contact
func (s *ContactService) Update(ctx context.Context, contact *entities.EmergencyContact) error {
	if contact.PhoneNumber == "" {
		return apperrors.NewValidationError("contact phone number is required")
	}
	return s.repo.Update(ctx, contact)
}

// Deactivate soft-deletes a contact; the row stays for alert history
func (s *ContactService) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
