package entities

import "time"

// EmergencyContact represents a person notified when a user alert fires.
// Contacts are soft-deleted: IsActive flips to false, the row stays.
type EmergencyContact struct {
	ID               string                 `json:"id" db:"id"`
	UserID           string                 `json:"user_id" db:"user_id"`
	Name             string                 `json:"name" db:"name"`
	Relationship     string                 `json:"relationship" db:"relationship"`
	PhoneNumber      string                 `json:"phone_number" db:"phone_number"`
	Email            string                 `json:"email,omitempty" db:"email"`
	IsPrimary        bool                   `json:"is_primary" db:"is_primary"`
	AlertPreferences map[string]interface{} `json:"alert_preferences,omitempty" db:"alert_preferences"`
	IsActive         bool                   `json:"is_active" db:"is_active"`
	CreatedAt        time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at" db:"updated_at"`
}
