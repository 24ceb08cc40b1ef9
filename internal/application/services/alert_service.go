package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/observability"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// AlertService dispatches emergency alerts to a user's contacts.
type AlertService struct {
	contacts repositories.ContactRepository
	alerts   repositories.AlertRepository
	sender   providers.SMSProvider
	eventBus providers.EventBus
	metrics  *observability.Metrics
}

// NewAlertService creates a new alert service. eventBus and metrics may
// be nil; publishing and metric recording are then skipped.
func NewAlertService(
	contacts repositories.ContactRepository,
	alerts repositories.AlertRepository,
	sender providers.SMSProvider,
	eventBus providers.EventBus,
	metrics *observability.Metrics,
) *AlertService {
	return &AlertService{
		contacts: contacts,
		alerts:   alerts,
		sender:   sender,
		eventBus: eventBus,
		metrics:  metrics,
	}
}

// TriggerAlert records one alert episode and notifies every active
// contact in order, primary first then by name. The history row is
// written before any send and counts contacts considered, not
// deliveries that succeeded. Contacts are notified sequentially; one
// failed send never aborts the rest.
func (s *AlertService) TriggerAlert(ctx context.Context, userID string, alertType entities.AlertType, message string) (*entities.AlertResult, error) {
	contacts, err := s.contacts.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, apperrors.NewPreconditionError("no emergency contacts found")
	}

	alert := &entities.AlertHistory{
		ID:               uuid.New().String(),
		UserID:           userID,
		AlertType:        alertType,
		Message:          message,
		ContactsNotified: len(contacts),
		TriggeredAt:      time.Now(),
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		observability.RecordAlertTriggered(ctx, s.metrics, string(alertType))
	}

	results := make([]entities.ContactNotification, 0, len(contacts))
	for _, contact := range contacts {
		results = append(results, s.notifyContact(ctx, contact, message))
	}

	s.publishEvent(ctx, alert)

	return &entities.AlertResult{
		AlertID:          alert.ID,
		ContactsNotified: len(contacts),
		Results:          results,
	}, nil
}

// ListHistory returns a user's most recent alert episodes.
func (s *AlertService) ListHistory(ctx context.Context, userID string, limit int) ([]*entities.AlertHistory, error) {
	return s.alerts.ListByUser(ctx, userID, limit)
}

func (s *AlertService) notifyContact(ctx context.Context, contact *entities.EmergencyContact, message string) entities.ContactNotification {
	result := entities.ContactNotification{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		PhoneNumber: contact.PhoneNumber,
	}

	receipt, err := s.sender.SendAlert(ctx, contact.PhoneNumber, message)
	if err != nil {
		log.Warn().Err(err).Str("contact_id", contact.ID).Msg("Failed to send alert SMS")
		result.Status = entities.NotificationFailed
		result.Error = err.Error()
	} else if receipt.Simulated {
		result.Status = entities.NotificationSimulated
	} else {
		result.Status = entities.NotificationSent
	}

	if s.metrics != nil {
		observability.RecordSMSSend(ctx, s.metrics, string(result.Status))
	}

	return result
}

// publishEvent notifies subscribers best-effort; delivery problems are
// logged and do not affect the alert outcome.
func (s *AlertService) publishEvent(ctx context.Context, alert *entities.AlertHistory) {
	if s.eventBus == nil {
		return
	}

	event := entities.NewAlertEvent(alert.ID, alert.UserID, alert.AlertType, alert.Message, alert.ContactsNotified)
	for _, channel := range []string{providers.EventChannelAlerts, providers.GetUserChannel(alert.UserID)} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			log.Warn().Err(err).Str("channel", channel).Msg("Failed to publish alert event")
		}
	}
}
