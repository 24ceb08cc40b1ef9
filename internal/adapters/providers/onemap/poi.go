package onemap

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/geo"
)

// themeResponse mirrors the OneMap theme service payload
type themeResponse struct {
	SrchResults []struct {
		Name        string `json:"NAME"`
		Description string `json:"DESCRIPTION"`
		LatLng      string `json:"LatLng"`
		BlockNumber string `json:"ADDRESSBLOCKHOUSENUMBER"`
		StreetName  string `json:"ADDRESSSTREETNAME"`
	} `json:"SrchResults"`
}

// NearbyPOI fetches a themed point-of-interest list and keeps entries
// within 2 km of the given point. An empty result is not an error; the
// first SrchResults entry is theme metadata without coordinates and is
// skipped naturally.
func (p *Provider) NearbyPOI(ctx context.Context, lat, lon float64, theme string) ([]providers.PointOfInterest, error) {
	if theme == "" {
		theme = "healthcare"
	}

	params := url.Values{}
	params.Set("queryName", theme)

	var payload themeResponse
	if err := p.getJSON(ctx, themePath, params, &payload); err != nil {
		return nil, err
	}

	pois := make([]providers.PointOfInterest, 0, len(payload.SrchResults))
	for _, result := range payload.SrchResults {
		poiLat, poiLon, ok := parseLatLng(result.LatLng)
		if !ok {
			continue
		}

		distance := geo.DistanceKm(lat, lon, poiLat, poiLon)
		if distance > poiRadiusKm {
			continue
		}

		pois = append(pois, providers.PointOfInterest{
			Name:        result.Name,
			Description: result.Description,
			Coordinates: providers.Coordinates{Latitude: poiLat, Longitude: poiLon},
			Address:     joinAddress(result.BlockNumber, result.StreetName),
			DistanceKm:  distance,
		})
	}

	return pois, nil
}

// parseLatLng splits OneMap's "lat,lng" pair
func parseLatLng(latLng string) (float64, float64, bool) {
	parts := strings.Split(latLng, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}

	return lat, lon, true
}

func joinAddress(block, street string) string {
	joined := strings.TrimSpace(block + " " + street)
	return joined
}
