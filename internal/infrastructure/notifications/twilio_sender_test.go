package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/pkg/config"
)

func TestTwilioSender_SimulatedMode(t *testing.T) {
	sender := NewTwilioSender(&config.SMSConfig{})

	receipt, err := sender.SendAlert(context.Background(), "+6581234567", "Missed medication: Metformin")
	require.NoError(t, err)
	assert.True(t, receipt.Simulated)
	assert.Equal(t, "+6581234567", receipt.To)
	assert.Empty(t, receipt.SID)
}

func TestTwilioSender_SendAlert(t *testing.T) {
	var gotBody, gotTo string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Get("Body")
		gotTo = r.PostForm.Get("To")

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"sid": "SM001", "status": "queued"})
	}))
	defer server.Close()

	cfg := &config.SMSConfig{AccountSID: "AC123", AuthToken: "secret", FromNumber: "+6590000000"}
	sender := NewTwilioSenderWithOptions(cfg, server.URL, server.Client())

	receipt, err := sender.SendAlert(context.Background(), "+6581234567", "Missed medication: Metformin")
	require.NoError(t, err)
	assert.Equal(t, "SM001", receipt.SID)
	assert.False(t, receipt.Simulated)
	assert.Equal(t, "+6581234567", gotTo)
	assert.Equal(t, "CircleAge Alert: Missed medication: Metformin. Contact your family member immediately if needed.", gotBody)
}

func TestTwilioSender_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003, "message": "Authentication Error"}`))
	}))
	defer server.Close()

	cfg := &config.SMSConfig{AccountSID: "AC123", AuthToken: "bad", FromNumber: "+6590000000"}
	sender := NewTwilioSenderWithOptions(cfg, server.URL, server.Client())

	_, err := sender.SendAlert(context.Background(), "+6581234567", "test")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "status 401"))
}

func TestTwilioSender_RejectedMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"sid": "SM002", "status": "failed", "error_code": 21211, "error_message": "Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	cfg := &config.SMSConfig{AccountSID: "AC123", AuthToken: "secret", FromNumber: "+6590000000"}
	sender := NewTwilioSenderWithOptions(cfg, server.URL, server.Client())

	_, err := sender.SendAlert(context.Background(), "not-a-number", "test")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "21211"))
}
