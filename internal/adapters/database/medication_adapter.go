package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/circleage/backend/pkg/errors"
)

// overdueQuery joins today's scheduled medications against today's
// taken-logs and computes how many minutes late each dose is.
const overdueQuery = `
SELECT m.id, m.name, m.dosage, m.schedule_time,
       EXTRACT(EPOCH FROM (NOW() - (CURRENT_DATE + m.schedule_time::time))) / 60 AS minutes_late
FROM medications m
WHERE m.user_id = $1
  AND m.is_active = TRUE
  AND (CURRENT_DATE + m.schedule_time::time) < NOW() - ($2 * INTERVAL '1 minute')
  AND NOT EXISTS (
      SELECT 1 FROM medication_logs l
      WHERE l.medication_id = m.id
        AND l.status = 'taken'
        AND l.taken_at::date = CURRENT_DATE
  )
ORDER BY m.schedule_time`

// MedicationAdapter implements MedicationRepository
type MedicationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	sqlxDB *sqlx.DB
}

// NewMedicationAdapter creates a new medication adapter
func NewMedicationAdapter(client *postgres.Client) repositories.MedicationRepository {
	return &MedicationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		sqlxDB: sqlx.NewDb(client.DB(), "postgres"),
	}
}

var medicationColumns = []interface{}{
	"id", "user_id", "name", "dosage", "schedule_time", "notes",
	"is_active", "created_at", "updated_at",
}

// Create creates a new medication
func (a *MedicationAdapter) Create(ctx context.Context, medication *entities.Medication) error {
	record := goqu.Record{
		"id":            medication.ID,
		"user_id":       medication.UserID,
		"name":          medication.Name,
		"dosage":        medication.Dosage,
		"schedule_time": medication.ScheduleTime,
		"notes":         sql.NullString{String: medication.Notes, Valid: medication.Notes != ""},
		"is_active":     medication.IsActive,
		"created_at":    medication.CreatedAt,
		"updated_at":    medication.UpdatedAt,
	}

	query, args, err := a.db.Insert("medications").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build medication insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create medication", err)
	}

	return nil
}

// GetByID retrieves a medication by ID
func (a *MedicationAdapter) GetByID(ctx context.Context, id string) (*entities.Medication, error) {
	query, args, err := a.db.Select(medicationColumns...).
		From("medications").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medication query", err)
	}

	medication, err := scanMedication(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("medication %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get medication", err)
	}

	return medication, nil
}

// ListActive returns a user's active medications ordered by schedule time
func (a *MedicationAdapter) ListActive(ctx context.Context, userID string) ([]*entities.Medication, error) {
	query, args, err := a.db.Select(medicationColumns...).
		From("medications").
		Where(goqu.Ex{"user_id": userID, "is_active": true}).
		Order(goqu.I("schedule_time").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medication list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medications", err)
	}
	defer rows.Close()

	var medications []*entities.Medication
	for rows.Next() {
		medication, err := scanMedication(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medication", err)
		}
		medications = append(medications, medication)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate medications", err)
	}

	return medications, nil
}

// Update updates a medication
func (a *MedicationAdapter) Update(ctx context.Context, medication *entities.Medication) error {
	medication.UpdatedAt = time.Now()

	record := goqu.Record{
		"name":          medication.Name,
		"dosage":        medication.Dosage,
		"schedule_time": medication.ScheduleTime,
		"notes":         sql.NullString{String: medication.Notes, Valid: medication.Notes != ""},
		"is_active":     medication.IsActive,
		"updated_at":    medication.UpdatedAt,
	}

	query, args, err := a.db.Update("medications").
		Set(record).
		Where(goqu.Ex{"id": medication.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build medication update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update medication", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("medication %s not found", medication.ID))
	}

	return nil
}

// Deactivate soft-deletes a medication
func (a *MedicationAdapter) Deactivate(ctx context.Context, id string) error {
	query, args, err := a.db.Update("medications").
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build medication deactivate query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to deactivate medication", err)
	}

	return nil
}

// LogDose records a taken or skipped dose
func (a *MedicationAdapter) LogDose(ctx context.Context, log *entities.MedicationLog) error {
	record := goqu.Record{
		"id":            log.ID,
		"medication_id": log.MedicationID,
		"user_id":       log.UserID,
		"status":        log.Status,
		"taken_at":      log.TakenAt,
	}

	query, args, err := a.db.Insert("medication_logs").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build dose log insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to log medication dose", err)
	}

	return nil
}

// FindOverdue returns active medications scheduled earlier today, more
// than thresholdMinutes late, with no taken-log for today.
func (a *MedicationAdapter) FindOverdue(ctx context.Context, userID string, thresholdMinutes int) ([]*entities.OverdueMedication, error) {
	var overdue []*entities.OverdueMedication
	if err := a.sqlxDB.SelectContext(ctx, &overdue, overdueQuery, userID, thresholdMinutes); err != nil {
		return nil, apperrors.NewInternalError("failed to query overdue medications", err)
	}
	return overdue, nil
}

// ListUserIDsWithActiveMedications returns the users the adherence
// sweep should visit.
func (a *MedicationAdapter) ListUserIDsWithActiveMedications(ctx context.Context) ([]string, error) {
	query, args, err := a.db.Select("user_id").
		From("medications").
		Where(goqu.Ex{"is_active": true}).
		Distinct().
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user sweep query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medication users", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewInternalError("failed to scan user id", err)
		}
		userIDs = append(userIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate medication users", err)
	}

	return userIDs, nil
}

func scanMedication(row rowScanner) (*entities.Medication, error) {
	medication := &entities.Medication{}
	var notes sql.NullString

	err := row.Scan(
		&medication.ID,
		&medication.UserID,
		&medication.Name,
		&medication.Dosage,
		&medication.ScheduleTime,
		&notes,
		&medication.IsActive,
		&medication.CreatedAt,
		&medication.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	medication.Notes = notes.String
	return medication, nil
}
