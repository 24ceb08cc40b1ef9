package entities

import "time"

// AlertType represents the reason an alert was triggered
type AlertType string

const (
	AlertMissedMedication AlertType = "missed_medication"
	AlertManualSOS        AlertType = "manual_sos"
	AlertAbnormalReading  AlertType = "abnormal_reading"
)

// AlertHistory is an append-only record of one alert episode. It is
// written once before any notification attempt; ContactsNotified counts
// contacts considered, not deliveries that succeeded.
type AlertHistory struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	AlertType        AlertType `json:"alert_type" db:"alert_type"`
	Message          string    `json:"message" db:"message"`
	ContactsNotified int       `json:"contacts_notified" db:"contacts_notified"`
	TriggeredAt      time.Time `json:"triggered_at" db:"triggered_at"`
}

// NotificationStatus represents a per-contact delivery outcome
type NotificationStatus string

const (
	NotificationSent      NotificationStatus = "sent"
	NotificationFailed    NotificationStatus = "failed"
	NotificationSimulated NotificationStatus = "simulated"
)

// ContactNotification is the outcome of one contact's SMS attempt
type ContactNotification struct {
	ContactID   string             `json:"contact_id"`
	ContactName string             `json:"contact_name"`
	PhoneNumber string             `json:"phone_number"`
	Status      NotificationStatus `json:"status"`
	Error       string             `json:"error,omitempty"`
}

// AlertResult aggregates the outcome of one TriggerAlert invocation
type AlertResult struct {
	AlertID          string                `json:"alert_id"`
	ContactsNotified int                   `json:"contacts_notified"`
	Results          []ContactNotification `json:"results"`
}
