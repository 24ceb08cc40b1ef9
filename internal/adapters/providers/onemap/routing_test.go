package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/config"
	"github.com/circleage/backend/pkg/geo"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) providers.NavigationProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := &config.OneMapConfig{BaseURL: server.URL, Token: "test-token"}
	return NewProviderWithOptions(cfg, nil, server.Client())
}

func foundRouteHandler(t *testing.T, calls *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, routePath, r.URL.Path)
		*calls = append(*calls, r.URL.Query().Get("routeType"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status_message": "Found route between points",
			"route_summary": map[string]float64{
				"total_distance": 3450,
				"total_time":     1250,
			},
			"route_instructions": [][]interface{}{
				{"Left", "VICTORIA STREET", 469.0, "1,13", 138, "469m", "NE", "N", "driving", "Head east on Victoria Street"},
				{"", "", 0.0, "2,1", 0, "0m", "N", "NE", "driving", ""},
			},
			"route_geometry": "encoded-polyline",
		})
	}
}

var (
	cityHall = providers.Coordinates{Latitude: 1.2931, Longitude: 103.8520}
	toaPayoh = providers.Coordinates{Latitude: 1.3343, Longitude: 103.8563}
	newYork  = providers.Coordinates{Latitude: 40.7, Longitude: -74.0}
)

func TestRoute_FirstModeWins(t *testing.T) {
	var calls []string
	p := newTestProvider(t, foundRouteHandler(t, &calls))

	result, err := p.Route(context.Background(), cityHall, toaPayoh, providers.RouteModeDrive)
	require.NoError(t, err)

	assert.Equal(t, []string{"drive"}, calls)
	assert.Equal(t, "3.45 km", result.Distance)
	assert.Equal(t, "20m", result.Duration)
	assert.Equal(t, providers.RouteType("drive"), result.RouteType)
	assert.False(t, result.Fallback)
	assert.Equal(t, "encoded-polyline", result.Geometry)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "Head east on Victoria Street (469m)", result.Steps[0])
	assert.Equal(t, "Step 2", result.Steps[1])
}

func TestRoute_OriginOutOfBoundsSubstituted(t *testing.T) {
	var starts []string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		starts = append(starts, r.URL.Query().Get("start"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status_message": "Found route between points",
			"route_summary":  map[string]float64{"total_distance": 1000, "total_time": 600},
		})
	})

	_, err := p.Route(context.Background(), newYork, cityHall, providers.RouteModeWalk)
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, fmt.Sprintf("%f,%f", 1.290270, 103.851959), starts[0])
}

func TestRoute_DestinationOutOfBounds(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no route query expected for out-of-bounds destination")
	})

	result, err := p.Route(context.Background(), cityHall, newYork, providers.RouteModeDrive)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "Destination coordinates are outside Singapore bounds", err.Error())
}

func TestRoute_AllModesFailProducesEstimate(t *testing.T) {
	var calls []string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Query().Get("routeType"))
		json.NewEncoder(w).Encode(map[string]interface{}{"status_message": "No route found"})
	})

	result, err := p.Route(context.Background(), cityHall, toaPayoh, providers.RouteModeTransit)
	require.NoError(t, err)

	// pt first, then walk and drive; no deduplication is performed.
	assert.Equal(t, []string{"pt", "walk", "drive"}, calls)
	assert.Equal(t, providers.RouteTypeEstimated, result.RouteType)
	assert.True(t, result.Fallback)
	assert.Len(t, result.Steps, 3)

	wantKm := geo.DistanceKm(cityHall.Latitude, cityHall.Longitude, toaPayoh.Latitude, toaPayoh.Longitude)
	assert.Equal(t, fmt.Sprintf("%.2f km", wantKm), result.Distance)
}

func TestRoute_RequestedModeAttemptedTwice(t *testing.T) {
	var calls []string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Query().Get("routeType"))
		json.NewEncoder(w).Encode(map[string]interface{}{"status_message": "No route found"})
	})

	_, err := p.Route(context.Background(), cityHall, toaPayoh, providers.RouteModeWalk)
	require.NoError(t, err)

	// A walk request tries walk twice, a preserved quirk.
	assert.Equal(t, []string{"walk", "walk", "drive"}, calls)
}

func TestRoute_TransportErrorProducesFallback(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result, err := p.Route(context.Background(), cityHall, toaPayoh, providers.RouteModeDrive)
	require.NoError(t, err)

	assert.Equal(t, providers.RouteTypeFallback, result.RouteType)
	assert.True(t, result.Fallback)
	assert.Len(t, result.Steps, 1)
}

func TestRoute_EstimateDurationFloor(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status_message": "No route found"})
	})

	// Two points ~150m apart: estimate rounds to 0 and is floored to 5m.
	near := providers.Coordinates{Latitude: 1.2931, Longitude: 103.8534}
	result, err := p.Route(context.Background(), cityHall, near, providers.RouteModeWalk)
	require.NoError(t, err)
	assert.Equal(t, "5m", result.Duration)
}

func TestWalkingAndTransitRoutes(t *testing.T) {
	var calls []string
	p := newTestProvider(t, foundRouteHandler(t, &calls))

	_, err := p.WalkingRoute(context.Background(), cityHall, toaPayoh)
	require.NoError(t, err)
	_, err = p.TransitRoute(context.Background(), cityHall, toaPayoh)
	require.NoError(t, err)

	assert.Equal(t, []string{"walk", "pt"}, calls)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2m", formatDuration(125))
	assert.Equal(t, "1h 2m", formatDuration(3725))
	assert.Equal(t, "0m", formatDuration(30))
}
