// Package weather implements the WeatherProvider against the
// OpenWeatherMap current weather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/config"
)

const (
	openWeatherURL     = "https://api.openweathermap.org/data/2.5/weather"
	defaultHTTPTimeout = 8 * time.Second
)

// OpenWeatherProvider implements providers.WeatherProvider.
type OpenWeatherProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherProvider creates a new OpenWeatherMap provider.
func NewOpenWeatherProvider(cfg *config.WeatherConfig) providers.WeatherProvider {
	return NewOpenWeatherProviderWithOptions(cfg, openWeatherURL, nil)
}

// NewOpenWeatherProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewOpenWeatherProviderWithOptions(cfg *config.WeatherConfig, baseURL string, httpClient *http.Client) providers.WeatherProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = openWeatherURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &OpenWeatherProvider{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// currentWeatherResponse is the subset of the API payload we use
type currentWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentAdvice fetches the current weather and maps it to the advice
// shown on the home screen.
func (p *OpenWeatherProvider) CurrentAdvice(ctx context.Context, lat, lon float64) (*providers.WeatherAdvice, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weather api key is required")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")
	params.Set("appid", p.apiKey)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather response has no conditions")
	}

	main := payload.Weather[0].Main
	description := payload.Weather[0].Description
	message, description := adviceFor(main, description)

	return &providers.WeatherAdvice{
		Main:         main,
		Description:  description,
		Message:      message,
		TemperatureC: payload.Main.Temp,
	}, nil
}

// adviceFor maps a weather condition to the message and decorated
// description shown to users.
func adviceFor(main, description string) (string, string) {
	switch main {
	case "Rain":
		return "It is rainy outside. Remember to bring an umbrella and take care on wet floors!", description + " 🌧️🌧️"
	case "Clouds":
		return "It is cloudy outside. A comfortable time for a walk!", description + " ☁️☁️"
	case "Clear":
		return "It is clear outside. Remember to stay hydrated and wear sunscreen!", description + " 🌤️🌤️"
	default:
		return "Keep an eye on the weather before heading out today.", description
	}
}
