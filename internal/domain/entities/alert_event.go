package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// AlertEvent is the real-time notification published when an alert
// episode is triggered for a user
type AlertEvent struct {
	ID               string    `json:"id"`
	AlertID          string    `json:"alert_id"`
	UserID           string    `json:"user_id"`
	AlertType        AlertType `json:"alert_type"`
	Message          string    `json:"message"`
	ContactsNotified int       `json:"contacts_notified"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewAlertEvent creates a new alert event
func NewAlertEvent(alertID, userID string, alertType AlertType, message string, contactsNotified int) *AlertEvent {
	return &AlertEvent{
		ID:               generateEventID(),
		AlertID:          alertID,
		UserID:           userID,
		AlertType:        alertType,
		Message:          message,
		ContactsNotified: contactsNotified,
		Timestamp:        time.Now(),
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
