package handlers

import (
	"net/http"

	"github.com/circleage/backend/internal/domain/providers"
)

// WeatherHandler handles weather advice HTTP requests
type WeatherHandler struct {
	weather providers.WeatherProvider
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weather providers.WeatherProvider) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

// GetAdvice handles GET /api/weather?lat=&lon=
func (h *WeatherHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	point, ok := parseCoordinates(query.Get("lat"), query.Get("lon"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	advice, err := h.weather.CurrentAdvice(r.Context(), point.Latitude, point.Longitude)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "weather service unavailable")
		return
	}

	respondWithJSON(w, http.StatusOK, advice)
}
