package providers

import "context"

// WeatherAdvice is the user-facing summary derived from current weather
type WeatherAdvice struct {
	Main         string  `json:"main"`
	Description  string  `json:"description"`
	Message      string  `json:"message"`
	TemperatureC float64 `json:"temperature_c"`
}

// WeatherProvider defines the weather service boundary
type WeatherProvider interface {
	// CurrentAdvice fetches current weather and maps it to advice text
	CurrentAdvice(ctx context.Context, lat, lon float64) (*WeatherAdvice, error)
}
