package entities

import "time"

// HealthLogType enumerates the supported health data readings
type HealthLogType string

const (
	HealthLogBloodPressure HealthLogType = "blood_pressure"
	HealthLogBloodSugar    HealthLogType = "blood_sugar"
	HealthLogWeight        HealthLogType = "weight"
	HealthLogHeartRate     HealthLogType = "heart_rate"
	HealthLogSteps         HealthLogType = "steps"
)

// HealthLog represents one self-reported health data point
type HealthLog struct {
	ID         string        `json:"id" db:"id"`
	UserID     string        `json:"user_id" db:"user_id"`
	LogType    HealthLogType `json:"log_type" db:"log_type"`
	Value      string        `json:"value" db:"value"`
	Unit       string        `json:"unit,omitempty" db:"unit"`
	Notes      string        `json:"notes,omitempty" db:"notes"`
	RecordedAt time.Time     `json:"recorded_at" db:"recorded_at"`
}
