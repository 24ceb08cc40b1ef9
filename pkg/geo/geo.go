// Package geo provides the great-circle distance and regional bounds
// checks used by the navigation and POI adapters.
package geo

import "math"

const earthRadiusKm = 6371.0

// Singapore bounding box used to sanity-check routing coordinates.
const (
	MinLatitude  = 1.16
	MaxLatitude  = 1.48
	MinLongitude = 103.6
	MaxLongitude = 104.1
)

// DistanceKm calculates the Haversine distance between two points in
// kilometers. Inputs are not validated; NaN in means NaN out.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinSingapore reports whether the point lies inside the Singapore
// bounding box.
func WithinSingapore(lat, lon float64) bool {
	return lat >= MinLatitude && lat <= MaxLatitude &&
		lon >= MinLongitude && lon <= MaxLongitude
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
