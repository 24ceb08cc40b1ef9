package onemap

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

func TestSearchLocation_FirstMatchWins(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "Toa Payoh Polyclinic", r.URL.Query().Get("searchVal"))
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"found": 2,
			"results": []map[string]string{
				{
					"SEARCHVAL": "TOA PAYOH POLYCLINIC",
					"LATITUDE":  "1.33430",
					"LONGITUDE": "103.85630",
					"ADDRESS":   "2003 TOA PAYOH LORONG 8 SINGAPORE 319260",
					"POSTAL":    "319260",
					"BUILDING":  "TOA PAYOH POLYCLINIC",
					"ROAD_NAME": "TOA PAYOH LORONG 8",
				},
				{"SEARCHVAL": "SECOND MATCH", "LATITUDE": "1.1", "LONGITUDE": "103.9"},
			},
		})
	})

	loc, err := p.SearchLocation(context.Background(), "Toa Payoh Polyclinic")
	require.NoError(t, err)

	assert.Equal(t, "TOA PAYOH POLYCLINIC", loc.Name)
	assert.InDelta(t, 1.3343, loc.Latitude, 1e-4)
	assert.InDelta(t, 103.8563, loc.Longitude, 1e-4)
	assert.Equal(t, "319260", loc.Postal)
	assert.Equal(t, "TOA PAYOH LORONG 8", loc.RoadName)
}

func TestSearchLocation_NoResults(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"found": 0, "results": []interface{}{}})
	})

	loc, err := p.SearchLocation(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.Nil(t, loc)
}

func TestSearchLocation_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // force a connection error

	cfg := &config.OneMapConfig{BaseURL: server.URL}
	p := NewProviderWithOptions(cfg, nil, nil)

	_, err := p.SearchLocation(context.Background(), "Bedok")
	require.Error(t, err)
}

func TestSearchLocation_EmptyAddress(t *testing.T) {
	p := NewProviderWithOptions(&config.OneMapConfig{BaseURL: "http://unused"}, nil, nil)
	_, err := p.SearchLocation(context.Background(), "   ")
	require.Error(t, err)
}

func TestNearbyPOI_FiltersByDistance(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, themePath, r.URL.Path)
		assert.Equal(t, "healthcare", r.URL.Query().Get("queryName"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"SrchResults": []map[string]string{
				{"FeatCount": "2"}, // theme metadata row, no LatLng
				{
					"NAME":                    "Nearby Clinic",
					"DESCRIPTION":             "General practice",
					"LatLng":                  "1.2950,103.8530",
					"ADDRESSBLOCKHOUSENUMBER": "12",
					"ADDRESSSTREETNAME":       "Hill Street",
				},
				{
					"NAME":   "Far Hospital",
					"LatLng": "1.4300,103.7000",
				},
			},
		})
	})

	pois, err := p.NearbyPOI(context.Background(), 1.2931, 103.8520, "")
	require.NoError(t, err)

	require.Len(t, pois, 1)
	assert.Equal(t, "Nearby Clinic", pois[0].Name)
	assert.Equal(t, "12 Hill Street", pois[0].Address)
	assert.Less(t, pois[0].DistanceKm, 2.0)
}

func TestNearbyPOI_EmptyIsSuccess(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"SrchResults": []interface{}{}})
	})

	pois, err := p.NearbyPOI(context.Background(), 1.2931, 103.8520, "healthcare")
	require.NoError(t, err)
	assert.Empty(t, pois)
}
