package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// AlertAdapter implements the append-only AlertRepository
type AlertAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAlertAdapter creates a new alert history adapter
func NewAlertAdapter(client *postgres.Client) repositories.AlertRepository {
	return &AlertAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts one alert history row. Rows are never updated.
func (a *AlertAdapter) Create(ctx context.Context, alert *entities.AlertHistory) error {
	record := goqu.Record{
		"id":                alert.ID,
		"user_id":           alert.UserID,
		"alert_type":        alert.AlertType,
		"message":           alert.Message,
		"contacts_notified": alert.ContactsNotified,
		"triggered_at":      alert.TriggeredAt,
	}

	query, args, err := a.db.Insert("alert_history").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build alert insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create alert history record", err)
	}

	return nil
}

// ListByUser returns a user's most recent alerts
func (a *AlertAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.AlertHistory, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := a.db.Select(
		"id", "user_id", "alert_type", "message", "contacts_notified", "triggered_at",
	).From("alert_history").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("triggered_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build alert list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list alert history", err)
	}
	defer rows.Close()

	var alerts []*entities.AlertHistory
	for rows.Next() {
		alert := &entities.AlertHistory{}
		if err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.AlertType,
			&alert.Message,
			&alert.ContactsNotified,
			&alert.TriggeredAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan alert history row", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate alert history", err)
	}

	return alerts, nil
}
