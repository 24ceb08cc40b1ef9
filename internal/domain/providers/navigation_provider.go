package providers

import (
	"context"
)

// RouteMode is a travel means for routing
type RouteMode string

const (
	RouteModeDrive   RouteMode = "drive"
	RouteModeWalk    RouteMode = "walk"
	RouteModeTransit RouteMode = "pt"
)

// RouteType tags how a route result was produced. A real route carries
// the mode that succeeded; "estimated" means every mode query failed and
// the route was computed locally; "fallback" means an error occurred and
// was absorbed into a best-effort estimate.
type RouteType string

const (
	RouteTypeEstimated RouteType = "estimated"
	RouteTypeFallback  RouteType = "fallback"
)

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a normalized geocoding match
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Postal    string  `json:"postal,omitempty"`
	Building  string  `json:"building,omitempty"`
	RoadName  string  `json:"road_name,omitempty"`
}

// RouteSummary carries the raw totals reported by the routing service
type RouteSummary struct {
	TotalDistanceMeters float64 `json:"total_distance_meters"`
	TotalTimeSeconds    float64 `json:"total_time_seconds"`
}

// RouteResult is constructed fresh per routing request and never persisted
type RouteResult struct {
	Distance  string       `json:"distance"` // "12.34 km"
	Duration  string       `json:"duration"` // "1h 5m" or "12m"
	Steps     []string     `json:"steps"`
	RouteType RouteType    `json:"route_type"`
	Fallback  bool         `json:"fallback"`
	Summary   RouteSummary `json:"summary"`
	Geometry  string       `json:"geometry,omitempty"`
}

// PointOfInterest is a themed place sourced from the mapping service
type PointOfInterest struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
	DistanceKm  float64     `json:"distance_km"`
}

// NavigationProvider defines the mapping service boundary: geocoding,
// routing with local fallback, and themed POI lookup.
type NavigationProvider interface {
	// SearchLocation geocodes an address and returns the first match
	SearchLocation(ctx context.Context, address string) (*Location, error)

	// Route plans a route between two points. The only error it returns
	// is a destination outside the serviced region; every other failure
	// is absorbed into an estimated or fallback RouteResult.
	Route(ctx context.Context, start, end Coordinates, mode RouteMode) (*RouteResult, error)

	// WalkingRoute plans a walking route
	WalkingRoute(ctx context.Context, start, end Coordinates) (*RouteResult, error)

	// TransitRoute plans a public-transport route
	TransitRoute(ctx context.Context, start, end Coordinates) (*RouteResult, error)

	// NearbyPOI fetches themed points of interest within 2 km of a point
	NearbyPOI(ctx context.Context, lat, lon float64, theme string) ([]PointOfInterest, error)
}
