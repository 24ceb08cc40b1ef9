package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_SMSConfig(t *testing.T) {
	os.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	os.Setenv("TWILIO_AUTH_TOKEN", "secret")
	os.Setenv("TWILIO_PHONE_NUMBER", "+6581234567")
	defer func() {
		os.Unsetenv("TWILIO_ACCOUNT_SID")
		os.Unsetenv("TWILIO_AUTH_TOKEN")
		os.Unsetenv("TWILIO_PHONE_NUMBER")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "AC123", cfg.SMS.AccountSID)
	assert.Equal(t, "secret", cfg.SMS.AuthToken)
	assert.Equal(t, "+6581234567", cfg.SMS.FromNumber)
	assert.True(t, cfg.SMS.Configured())
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TWILIO_ACCOUNT_SID")
	os.Unsetenv("TWILIO_AUTH_TOKEN")
	os.Unsetenv("ONEMAP_BASE_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	// Missing credentials must select simulated SMS mode, not fail.
	assert.False(t, cfg.SMS.Configured())
	assert.Equal(t, "https://www.onemap.gov.sg", cfg.OneMap.BaseURL)
	assert.Equal(t, "circleage", cfg.Database.Database)
}
