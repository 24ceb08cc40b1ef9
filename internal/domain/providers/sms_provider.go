package providers

import "context"

// SMSReceipt is the provider's acknowledgement of one message
type SMSReceipt struct {
	SID       string `json:"sid,omitempty"`
	To        string `json:"to"`
	Simulated bool   `json:"simulated"`
}

// SMSProvider defines the SMS boundary used by the alert dispatcher.
// Implementations may run in simulated mode when credentials are absent.
type SMSProvider interface {
	// SendAlert delivers an alert message to a phone number
	SendAlert(ctx context.Context, phoneNumber, message string) (*SMSReceipt, error)
}
