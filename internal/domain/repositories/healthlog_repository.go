package repositories

import (
	"context"

	"github.com/circleage/backend/internal/domain/entities"
)

// HealthLogRepository defines the interface for health data logs.
type HealthLogRepository interface {
	Create(ctx context.Context, log *entities.HealthLog) error
	ListByUser(ctx context.Context, userID string, logType entities.HealthLogType, limit int) ([]*entities.HealthLog, error)
}
