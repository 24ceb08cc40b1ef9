package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// HealthLogService handles business logic for self-reported health data
type HealthLogService struct {
	repo repositories.HealthLogRepository
}

// NewHealthLogService creates a new health log service
func NewHealthLogService(repo repositories.HealthLogRepository) *HealthLogService {
	return &HealthLogService{repo: repo}
}

var healthLogTypes = map[entities.HealthLogType]struct{}{
	entities.HealthLogBloodPressure: {},
	entities.HealthLogBloodSugar:    {},
	entities.HealthLogWeight:        {},
	entities.HealthLogHeartRate:     {},
	entities.HealthLogSteps:         {},
}

// Create records one health data point
func (s *HealthLogService) Create(ctx context.Context, log *entities.HealthLog) error {
	if _, ok := healthLogTypes[log.LogType]; !ok {
		return apperrors.NewValidationError("unknown health log type")
	}
	if log.Value == "" {
		return apperrors.NewValidationError("value is required")
	}

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.RecordedAt.IsZero() {
		log.RecordedAt = time.Now()
	}

	return s.repo.Create(ctx, log)
}

// ListByUser returns a user's health logs, newest first. logType may be
// empty to list every type.
func (s *HealthLogService) ListByUser(ctx context.Context, userID string, logType entities.HealthLogType, limit int) ([]*entities.HealthLog, error) {
	if logType != "" {
		if _, ok := healthLogTypes[logType]; !ok {
			return nil, apperrors.NewValidationError("unknown health log type")
		}
	}
	return s.repo.ListByUser(ctx, userID, logType, limit)
}
