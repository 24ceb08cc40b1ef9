package entities

import "time"

// Medication represents a scheduled medication for a user
type Medication struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Dosage       string    `json:"dosage" db:"dosage"`
	ScheduleTime string    `json:"schedule_time" db:"schedule_time"` // "HH:MM", 24h
	Notes        string    `json:"notes,omitempty" db:"notes"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// MedicationLogStatus represents the outcome recorded for a dose
type MedicationLogStatus string

const (
	MedicationTaken   MedicationLogStatus = "taken"
	MedicationSkipped MedicationLogStatus = "skipped"
)

// MedicationLog records that a dose was taken or skipped
type MedicationLog struct {
	ID           string              `json:"id" db:"id"`
	MedicationID string              `json:"medication_id" db:"medication_id"`
	UserID       string              `json:"user_id" db:"user_id"`
	Status       MedicationLogStatus `json:"status" db:"status"`
	TakenAt      time.Time           `json:"taken_at" db:"taken_at"`
}

// OverdueMedication is a derived row produced by the adherence check:
// a medication whose scheduled time today has elapsed by more than the
// threshold with no taken-log for today. Never persisted.
type OverdueMedication struct {
	MedicationID string  `json:"medication_id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Dosage       string  `json:"dosage" db:"dosage"`
	ScheduleTime string  `json:"schedule_time" db:"schedule_time"`
	MinutesLate  float64 `json:"minutes_late" db:"minutes_late"`
}
