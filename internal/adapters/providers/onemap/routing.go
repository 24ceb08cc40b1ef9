package onemap

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/geo"
)

const routeFoundStatus = "Found route between points"

// fallbackOrigin replaces origin coordinates that fall outside the
// serviced region. Out-of-bounds origins are substituted, not rejected;
// only an out-of-bounds destination is a hard failure.
var fallbackOrigin = providers.Coordinates{Latitude: 1.290270, Longitude: 103.851959}

// ErrDestinationOutOfBounds is the only hard failure the routing chain
// surfaces.
var ErrDestinationOutOfBounds = fmt.Errorf("Destination coordinates are outside Singapore bounds")

// routeResponse mirrors the OneMap routing payload
type routeResponse struct {
	StatusMessage string `json:"status_message"`
	RouteSummary  struct {
		TotalDistance float64 `json:"total_distance"`
		TotalTime     float64 `json:"total_time"`
	} `json:"route_summary"`
	RouteInstructions [][]interface{} `json:"route_instructions"`
	RouteGeometry     string          `json:"route_geometry"`
}

// Route plans a route between two points, trying the requested mode
// first, then walk, then drive. The requested mode is not deduplicated
// from the candidate list, so a "walk" request attempts walk twice;
// this mirrors the long-standing behavior callers depend on. The first
// mode reporting a found route wins. When every mode fails the result
// is an estimated straight-line route; when a transport or parse error
// occurs the result is a generic fallback route. Both are reported as
// success, tagged via RouteType and Fallback.
func (p *Provider) Route(ctx context.Context, start, end providers.Coordinates, mode providers.RouteMode) (*providers.RouteResult, error) {
	if !geo.WithinSingapore(start.Latitude, start.Longitude) {
		log.Warn().
			Float64("lat", start.Latitude).
			Float64("lon", start.Longitude).
			Msg("origin outside Singapore bounds, substituting fallback origin")
		start = fallbackOrigin
	}

	if !geo.WithinSingapore(end.Latitude, end.Longitude) {
		return nil, ErrDestinationOutOfBounds
	}

	modes := []providers.RouteMode{mode, providers.RouteModeWalk, providers.RouteModeDrive}

	for _, candidate := range modes {
		resp, err := p.queryRoute(ctx, start, end, candidate)
		if err != nil {
			return p.fallbackRoute(start, end, err), nil
		}

		if resp.StatusMessage == routeFoundStatus {
			return buildRouteResult(resp, candidate), nil
		}

		if candidate == mode {
			log.Warn().
				Str("mode", string(candidate)).
				Str("status", resp.StatusMessage).
				Msg("requested route mode returned no route")
		}
	}

	return p.estimatedRoute(start, end), nil
}

// WalkingRoute plans a walking route
func (p *Provider) WalkingRoute(ctx context.Context, start, end providers.Coordinates) (*providers.RouteResult, error) {
	return p.Route(ctx, start, end, providers.RouteModeWalk)
}

// TransitRoute plans a public-transport route
func (p *Provider) TransitRoute(ctx context.Context, start, end providers.Coordinates) (*providers.RouteResult, error) {
	return p.Route(ctx, start, end, providers.RouteModeTransit)
}

func (p *Provider) queryRoute(ctx context.Context, start, end providers.Coordinates, mode providers.RouteMode) (*routeResponse, error) {
	params := url.Values{}
	params.Set("start", fmt.Sprintf("%f,%f", start.Latitude, start.Longitude))
	params.Set("end", fmt.Sprintf("%f,%f", end.Latitude, end.Longitude))
	params.Set("routeType", string(mode))

	var payload routeResponse
	if err := p.getJSON(ctx, routePath, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// buildRouteResult converts a successful routing response.
func buildRouteResult(resp *routeResponse, mode providers.RouteMode) *providers.RouteResult {
	return &providers.RouteResult{
		Distance:  fmt.Sprintf("%.2f km", resp.RouteSummary.TotalDistance/1000),
		Duration:  formatDuration(resp.RouteSummary.TotalTime),
		Steps:     parseInstructions(resp.RouteInstructions),
		RouteType: providers.RouteType(mode),
		Summary: providers.RouteSummary{
			TotalDistanceMeters: resp.RouteSummary.TotalDistance,
			TotalTimeSeconds:    resp.RouteSummary.TotalTime,
		},
		Geometry: resp.RouteGeometry,
	}
}

// estimatedRoute is returned when every candidate mode fails to report
// a route: straight-line distance, three generic steps.
func (p *Provider) estimatedRoute(start, end providers.Coordinates) *providers.RouteResult {
	distanceKm := geo.DistanceKm(start.Latitude, start.Longitude, end.Latitude, end.Longitude)
	minutes := estimatedMinutes(distanceKm)

	return &providers.RouteResult{
		Distance: fmt.Sprintf("%.2f km", distanceKm),
		Duration: formatDuration(float64(minutes * 60)),
		Steps: []string{
			"Head towards your destination",
			"Continue in the general direction of travel",
			"You will arrive at your destination",
		},
		RouteType: providers.RouteTypeEstimated,
		Fallback:  true,
		Summary: providers.RouteSummary{
			TotalDistanceMeters: distanceKm * 1000,
			TotalTimeSeconds:    float64(minutes * 60),
		},
	}
}

// fallbackRoute absorbs a transport or parse error into a best-effort
// estimate with a single generic step. The error never reaches the
// routing caller.
func (p *Provider) fallbackRoute(start, end providers.Coordinates, cause error) *providers.RouteResult {
	log.Warn().Err(cause).Msg("route query failed, returning fallback estimate")

	distanceKm := geo.DistanceKm(start.Latitude, start.Longitude, end.Latitude, end.Longitude)
	minutes := estimatedMinutes(distanceKm)

	return &providers.RouteResult{
		Distance:  fmt.Sprintf("%.2f km", distanceKm),
		Duration:  formatDuration(float64(minutes * 60)),
		Steps:     []string{"Direct route to destination (estimated)"},
		RouteType: providers.RouteTypeFallback,
		Fallback:  true,
		Summary: providers.RouteSummary{
			TotalDistanceMeters: distanceKm * 1000,
			TotalTimeSeconds:    float64(minutes * 60),
		},
	}
}

// estimatedMinutes derives a walking-pace estimate, never under five
// minutes.
func estimatedMinutes(distanceKm float64) int {
	minutes := int(math.Round(distanceKm * 3))
	if minutes < 5 {
		minutes = 5
	}
	return minutes
}

// formatDuration renders seconds as "Xh Ym", or "Ym" under an hour.
func formatDuration(totalSeconds float64) string {
	hours := int(totalSeconds) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// parseInstructions renders OneMap's tuple-like route instructions as
// "{text} ({distance}m)", falling back to "Step {n}" when the text is
// missing.
func parseInstructions(instructions [][]interface{}) []string {
	steps := make([]string, 0, len(instructions))
	for i, instruction := range instructions {
		text := instructionText(instruction)
		if text == "" {
			text = fmt.Sprintf("Step %d", i+1)
		}

		if distance, ok := instructionDistance(instruction); ok {
			steps = append(steps, fmt.Sprintf("%s (%.0fm)", text, distance))
		} else {
			steps = append(steps, text)
		}
	}
	return steps
}

// instructionText extracts the verbal direction. OneMap places the full
// sentence at index 9 and the turn token at index 0.
func instructionText(instruction []interface{}) string {
	if len(instruction) > 9 {
		if s, ok := instruction[9].(string); ok && s != "" {
			return s
		}
	}
	if len(instruction) > 0 {
		if s, ok := instruction[0].(string); ok {
			return s
		}
	}
	return ""
}

// instructionDistance extracts the leg distance in meters (index 2).
func instructionDistance(instruction []interface{}) (float64, bool) {
	if len(instruction) > 2 {
		if d, ok := instruction[2].(float64); ok && d > 0 {
			return d, true
		}
	}
	return 0, false
}
