package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// EventRepository defines the interface for community events and RSVPs.
type EventRepository interface {
	Create(ctx context.Context, event *entities.CommunityEvent) error
	GetByID(ctx context.Context, id string) (*entities.CommunityEvent, error)
	ListUpcoming(ctx context.Context, limit int) ([]*entities.CommunityEvent, error)
	Join(ctx context.Context, rsvp *entities.EventRSVP) error
	Leave(ctx context.Context, eventID, userID string) error
	CountAttendees(ctx context.Context, eventID string) (int, error)
}
