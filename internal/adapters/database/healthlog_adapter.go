package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// HealthLogAdapter implements HealthLogRepository
type HealthLogAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHealthLogAdapter creates a new health log adapter
func NewHealthLogAdapter(client *postgres.Client) repositories.HealthLogRepository {
	return &HealthLogAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create records one health data point
func (a *HealthLogAdapter) Create(ctx context.Context, log *entities.HealthLog) error {
	record := goqu.Record{
		"id":          log.ID,
		"user_id":     log.UserID,
		"log_type":    log.LogType,
		"value":       log.Value,
		"unit":        sql.NullString{String: log.Unit, Valid: log.Unit != ""},
		"notes":       sql.NullString{String: log.Notes, Valid: log.Notes != ""},
		"recorded_at": log.RecordedAt,
	}

	query, args, err := a.db.Insert("health_logs").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build health log insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create health log", err)
	}

	return nil
}

// ListByUser returns a user's health logs, newest first, optionally
// filtered by type
func (a *HealthLogAdapter) ListByUser(ctx context.Context, userID string, logType entities.HealthLogType, limit int) ([]*entities.HealthLog, error) {
	if limit <= 0 {
		limit = 100
	}

	ds := a.db.Select(
		"id", "user_id", "log_type", "value", "unit", "notes", "recorded_at",
	).From("health_logs").
		Where(goqu.Ex{"user_id": userID})

	if logType != "" {
		ds = ds.Where(goqu.Ex{"log_type": logType})
	}

	query, args, err := ds.Order(goqu.I("recorded_at").Desc()).Limit(uint(limit)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build health log query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list health logs", err)
	}
	defer rows.Close()

	var logs []*entities.HealthLog
	for rows.Next() {
		log := &entities.HealthLog{}
		var unit, notes sql.NullString
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LogType,
			&log.Value,
			&unit,
			&notes,
			&log.RecordedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan health log", err)
		}
		log.Unit = unit.String
		log.Notes = notes.String
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate health logs", err)
	}

	return logs, nil
}
