package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/config"
)

const (
	twilioBaseURL      = "https://api.twilio.com/2010-04-01"
	defaultHTTPTimeout = 30 * time.Second

	// alertTemplate is the fixed message sent to emergency contacts.
	alertTemplate = "CircleAge Alert: %s. Contact your family member immediately if needed."
)

// TwilioSender sends SMS alerts via the Twilio REST API. When account
// credentials are absent it is constructed in simulated mode: SendAlert
// succeeds without any network call, so non-production environments
// exercise the full alert flow safely.
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	simulated  bool
	httpClient *http.Client
	baseURL    string
}

// NewTwilioSender creates a new SMS sender from configuration
func NewTwilioSender(cfg *config.SMSConfig) providers.SMSProvider {
	return NewTwilioSenderWithOptions(cfg, twilioBaseURL, nil)
}

// NewTwilioSenderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewTwilioSenderWithOptions(cfg *config.SMSConfig, baseURL string, httpClient *http.Client) providers.SMSProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = twilioBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	simulated := !cfg.Configured()
	if simulated {
		log.Warn().Msg("SMS credentials not configured, sender running in simulated mode")
	}

	return &TwilioSender{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		simulated:  simulated,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// twilioMessageResponse is the subset of Twilio's response we care about
type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// SendAlert delivers an alert message to a phone number. In simulated
// mode it returns a receipt describing what would have been sent.
func (t *TwilioSender) SendAlert(ctx context.Context, phoneNumber, message string) (*providers.SMSReceipt, error) {
	body := fmt.Sprintf(alertTemplate, message)

	if t.simulated {
		log.Info().
			Str("to", phoneNumber).
			Str("body", body).
			Msg("simulated SMS alert (no credentials configured)")
		return &providers.SMSReceipt{To: phoneNumber, Simulated: true}, nil
	}

	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("From", t.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send SMS request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read SMS response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("SMS API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var msg twilioMessageResponse
	if err := json.Unmarshal(respBody, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SMS response: %w", err)
	}

	if msg.ErrorCode != nil {
		return nil, fmt.Errorf("SMS rejected (code %d): %s", *msg.ErrorCode, msg.ErrorMessage)
	}

	return &providers.SMSReceipt{SID: msg.SID, To: phoneNumber}, nil
}
