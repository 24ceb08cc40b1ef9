package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// EventService handles business logic for community events and RSVPs
type EventService struct {
	repo repositories.EventRepository
}

// NewEventService creates a new community event service
func NewEventService(repo repositories.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// Create publishes a new community event
func (s *EventService) Create(ctx context.Context, event *entities.CommunityEvent) error {
	if event.Title == "" {
		return apperrors.NewValidationError("event title is required")
	}
	if event.StartsAt.Before(time.Now()) {
		return apperrors.NewValidationError("event start time must be in the future")
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	return s.repo.Create(ctx, event)
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(ctx context.Context, id string) (*entities.CommunityEvent, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUpcoming returns upcoming events, soonest first
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]*entities.CommunityEvent, error) {
	return s.repo.ListUpcoming(ctx, limit)
}

// Join signs a user up for an event. A positive capacity is enforced;
// zero capacity means unlimited.
func (s *EventService) Join(ctx context.Context, eventID, userID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Capacity > 0 {
		attendees, err := s.repo.CountAttendees(ctx, eventID)
		if err != nil {
			return err
		}
		if attendees >= event.Capacity {
			return apperrors.NewPreconditionError("event is at capacity")
		}
	}

	rsvp := &entities.EventRSVP{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return s.repo.Join(ctx, rsvp)
}

// Leave withdraws a user's RSVP
func (s *EventService) Leave(ctx context.Context, eventID, userID string) error {
	return s.repo.Leave(ctx, eventID, userID)
}

// CountAttendees counts an event's RSVPs
func (s *EventService) CountAttendees(ctx context.Context, eventID string) (int, error) {
	return s.repo.CountAttendees(ctx, eventID)
}
