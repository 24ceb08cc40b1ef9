package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
)

// overdueThresholdMinutes is how late a scheduled dose may be before it
// counts as missed.
const overdueThresholdMinutes = 120

// AdherenceService detects missed medication doses and escalates them
// through the alert dispatcher.
type AdherenceService struct {
	medications repositories.MedicationRepository
	alerts      *AlertService
}

// NewAdherenceService creates a new adherence service
func NewAdherenceService(medications repositories.MedicationRepository, alerts *AlertService) *AdherenceService {
	return &AdherenceService{
		medications: medications,
		alerts:      alerts,
	}
}

// CheckUser returns the user's overdue medications: active, scheduled
// earlier today, more than two hours late, with no taken-log for today.
// A non-empty list triggers one missed_medication alert naming every
// overdue medication. The overdue list is returned even when dispatch
// fails; users without contacts would otherwise never get their
// adherence result.
func (s *AdherenceService) CheckUser(ctx context.Context, userID string) ([]*entities.OverdueMedication, error) {
	overdue, err := s.medications.FindOverdue(ctx, userID, overdueThresholdMinutes)
	if err != nil {
		return nil, err
	}
	if len(overdue) == 0 {
		return overdue, nil
	}

	names := make([]string, 0, len(overdue))
	for _, med := range overdue {
		names = append(names, med.Name)
	}
	message := fmt.Sprintf("You may have missed your medication: %s", strings.Join(names, ", "))

	if _, err := s.alerts.TriggerAlert(ctx, userID, entities.AlertMissedMedication, message); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to dispatch missed-medication alert")
	}

	return overdue, nil
}

// Sweep runs the adherence check for every user with active
// medications. Per-user failures are logged and the sweep continues.
func (s *AdherenceService) Sweep(ctx context.Context) error {
	userIDs, err := s.medications.ListUserIDsWithActiveMedications(ctx)
	if err != nil {
		return err
	}

	var flagged int
	for _, userID := range userIDs {
		overdue, err := s.CheckUser(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Adherence check failed")
			continue
		}
		if len(overdue) > 0 {
			flagged++
		}
	}

	log.Info().Int("users", len(userIDs)).Int("flagged", flagged).Msg("Adherence sweep completed")
	return nil
}
