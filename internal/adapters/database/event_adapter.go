package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// EventAdapter implements EventRepository
type EventAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewEventAdapter creates a new community event adapter
func NewEventAdapter(client *postgres.Client) repositories.EventRepository {
	return &EventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var eventColumns = []interface{}{
	"id", "title", "description", "category", "location", "latitude",
	"longitude", "starts_at", "capacity", "created_by", "created_at",
}

// Create creates a new community event
func (a *EventAdapter) Create(ctx context.Context, event *entities.CommunityEvent) error {
	record := goqu.Record{
		"id":          event.ID,
		"title":       event.Title,
		"description": sql.NullString{String: event.Description, Valid: event.Description != ""},
		"category":    event.Category,
		"location":    event.Location,
		"latitude":    event.Latitude,
		"longitude":   event.Longitude,
		"starts_at":   event.StartsAt,
		"capacity":    event.Capacity,
		"created_by":  event.CreatedBy,
		"created_at":  event.CreatedAt,
	}

	query, args, err := a.db.Insert("community_events").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build event insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create community event", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (a *EventAdapter) GetByID(ctx context.Context, id string) (*entities.CommunityEvent, error) {
	query, args, err := a.db.Select(eventColumns...).
		From("community_events").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build event query", err)
	}

	event, err := scanEvent(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("community event %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get community event", err)
	}

	return event, nil
}

// ListUpcoming returns events starting after now, soonest first
func (a *EventAdapter) ListUpcoming(ctx context.Context, limit int) ([]*entities.CommunityEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := a.db.Select(eventColumns...).
		From("community_events").
		Where(goqu.C("starts_at").Gt(time.Now())).
		Order(goqu.I("starts_at").Asc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upcoming events query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list upcoming events", err)
	}
	defer rows.Close()

	var events []*entities.CommunityEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan community event", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate community events", err)
	}

	return events, nil
}

// Join records an RSVP
func (a *EventAdapter) Join(ctx context.Context, rsvp *entities.EventRSVP) error {
	record := goqu.Record{
		"id":         rsvp.ID,
		"event_id":   rsvp.EventID,
		"user_id":    rsvp.UserID,
		"created_at": rsvp.CreatedAt,
	}

	query, args, err := a.db.Insert("event_rsvps").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build rsvp insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to join event", err)
	}

	return nil
}

// Leave removes an RSVP
func (a *EventAdapter) Leave(ctx context.Context, eventID, userID string) error {
	query, args, err := a.db.Delete("event_rsvps").
		Where(goqu.Ex{"event_id": eventID, "user_id": userID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build rsvp delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to leave event", err)
	}

	return nil
}

// CountAttendees counts RSVPs for an event
func (a *EventAdapter) CountAttendees(ctx context.Context, eventID string) (int, error) {
	query, args, err := a.db.Select(goqu.COUNT("*")).
		From("event_rsvps").
		Where(goqu.Ex{"event_id": eventID}).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build attendee count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count attendees", err)
	}

	return count, nil
}

func scanEvent(row rowScanner) (*entities.CommunityEvent, error) {
	event := &entities.CommunityEvent{}
	var description sql.NullString

	err := row.Scan(
		&event.ID,
		&event.Title,
		&description,
		&event.Category,
		&event.Location,
		&event.Latitude,
		&event.Longitude,
		&event.StartsAt,
		&event.Capacity,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Description = description.String
	return event, nil
}
