package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/pkg/config"
)

func newTestProvider(t *testing.T, main, description string) *OpenWeatherProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"weather": []map[string]string{{"main": main, "description": description}},
			"main":    map[string]float64{"temp": 30.5},
		})
	}))
	t.Cleanup(server.Close)

	cfg := &config.WeatherConfig{APIKey: "test-key"}
	return NewOpenWeatherProviderWithOptions(cfg, server.URL, server.Client()).(*OpenWeatherProvider)
}

func TestCurrentAdvice_Mapping(t *testing.T) {
	tests := []struct {
		main            string
		description     string
		wantMessage     string
		wantDescription string
	}{
		{"Rain", "light rain", "It is rainy outside. Remember to bring an umbrella and take care on wet floors!", "light rain 🌧️🌧️"},
		{"Clouds", "broken clouds", "It is cloudy outside. A comfortable time for a walk!", "broken clouds ☁️☁️"},
		{"Clear", "clear sky", "It is clear outside. Remember to stay hydrated and wear sunscreen!", "clear sky 🌤️🌤️"},
		{"Haze", "haze", "Keep an eye on the weather before heading out today.", "haze"},
	}

	for _, tt := range tests {
		t.Run(tt.main, func(t *testing.T) {
			p := newTestProvider(t, tt.main, tt.description)

			advice, err := p.CurrentAdvice(context.Background(), 1.3521, 103.8198)
			require.NoError(t, err)

			assert.Equal(t, tt.main, advice.Main)
			assert.Equal(t, tt.wantMessage, advice.Message)
			assert.Equal(t, tt.wantDescription, advice.Description)
			assert.InDelta(t, 30.5, advice.TemperatureC, 1e-9)
		})
	}
}

func TestCurrentAdvice_MissingAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(&config.WeatherConfig{})
	_, err := p.CurrentAdvice(context.Background(), 1.35, 103.82)
	require.Error(t, err)
}

func TestCurrentAdvice_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	cfg := &config.WeatherConfig{APIKey: "bad"}
	p := NewOpenWeatherProviderWithOptions(cfg, server.URL, server.Client())

	_, err := p.CurrentAdvice(context.Background(), 1.35, 103.82)
	require.Error(t, err)
}
