package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// AlertRepository defines the interface for the append-only alert
// history.
type AlertRepository interface {
	Create(ctx context.Context, alert *entities.AlertHistory) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.AlertHistory, error)
}
