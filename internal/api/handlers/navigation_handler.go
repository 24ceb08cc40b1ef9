package handlers

import (
	"net/http"
	"strconv"

	"github.com/circleage/backend/internal/domain/providers"
)

// NavigationHandler handles location search, routing and POI requests
type NavigationHandler struct {
	navigation providers.NavigationProvider
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navigation providers.NavigationProvider) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// SearchLocation handles GET /api/navigation/search?q={address}
func (h *NavigationHandler) SearchLocation(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("q")
	if address == "" {
		respondWithError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	location, err := h.navigation.SearchLocation(r.Context(), address)
	if err != nil {
		// Search failures surface as a failure payload, not a 5xx.
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"location": location,
	})
}

// GetRoute handles GET /api/navigation/route
func (h *NavigationHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, ok := parseCoordinates(query.Get("start_lat"), query.Get("start_lon"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "start_lat and start_lon are required")
		return
	}
	end, ok := parseCoordinates(query.Get("end_lat"), query.Get("end_lon"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "end_lat and end_lon are required")
		return
	}

	mode := providers.RouteMode(query.Get("mode"))
	if mode == "" {
		mode = providers.RouteModeDrive
	}

	route, err := h.navigation.Route(r.Context(), start, end, mode)
	if err != nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"route":   route,
	})
}

// NearbyPOI handles GET /api/navigation/poi?lat=&lon=&theme=
func (h *NavigationHandler) NearbyPOI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	point, ok := parseCoordinates(query.Get("lat"), query.Get("lon"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	pois, err := h.navigation.NearbyPOI(r.Context(), point.Latitude, point.Longitude, query.Get("theme"))
	if err != nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"pois":    pois,
		"count":   len(pois),
	})
}

func parseCoordinates(latStr, lonStr string) (providers.Coordinates, bool) {
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		return providers.Coordinates{}, false
	}
	return providers.Coordinates{Latitude: lat, Longitude: lon}, true
}
