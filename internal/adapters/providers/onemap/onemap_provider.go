// Package onemap implements the NavigationProvider against the OneMap
// Singapore APIs: geocoding search, point-to-point routing and themed
// points of interest.
package onemap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/pkg/config"
)

const (
	searchPath = "/api/common/elastic/search"
	routePath  = "/api/public/routingsvc/route"
	themePath  = "/api/public/themesvc/retrieveTheme"

	defaultHTTPTimeout    = 8 * time.Second
	defaultSearchCacheTTL = 60 * 60 * 24 * 7

	// poiRadiusKm bounds the themed POI proximity filter.
	poiRadiusKm = 2.0
)

// Provider implements providers.NavigationProvider using OneMap.
type Provider struct {
	token      string
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewProvider creates a new OneMap navigation provider.
func NewProvider(cfg *config.OneMapConfig, cache providers.CacheProvider) providers.NavigationProvider {
	return NewProviderWithOptions(cfg, cache, nil)
}

// NewProviderWithOptions allows overriding the HTTP client (used for tests).
func NewProviderWithOptions(cfg *config.OneMapConfig, cache providers.CacheProvider, httpClient *http.Client) providers.NavigationProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Provider{
		token:      cfg.Token,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
	}
}

// searchResponse mirrors the OneMap elastic search payload
type searchResponse struct {
	Found   int `json:"found"`
	Results []struct {
		SearchVal string `json:"SEARCHVAL"`
		Latitude  string `json:"LATITUDE"`
		Longitude string `json:"LONGITUDE"`
		Address   string `json:"ADDRESS"`
		Postal    string `json:"POSTAL"`
		Building  string `json:"BUILDING"`
		RoadName  string `json:"ROAD_NAME"`
	} `json:"results"`
}

// SearchLocation geocodes an address and normalizes the first match.
func (p *Provider) SearchLocation(ctx context.Context, address string) (*providers.Location, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("address is required")
	}

	cacheKey := "onemap:v1:search:" + hashKey(strings.ToLower(trimmed))
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var loc providers.Location
			if err := json.Unmarshal(cached, &loc); err == nil && (loc.Latitude != 0 || loc.Longitude != 0) {
				return &loc, nil
			}
		}
	}

	params := url.Values{}
	params.Set("searchVal", trimmed)
	params.Set("returnGeom", "Y")
	params.Set("getAddrDetails", "Y")

	var payload searchResponse
	if err := p.getJSON(ctx, searchPath, params, &payload); err != nil {
		return nil, err
	}

	if payload.Found == 0 || len(payload.Results) == 0 {
		return nil, fmt.Errorf("no results for address")
	}

	first := payload.Results[0]
	loc := providers.Location{
		Name:     first.SearchVal,
		Latitude: parseCoord(first.Latitude),
		Address:  first.Address,
		Postal:   first.Postal,
		Building: first.Building,
		RoadName: first.RoadName,
	}
	loc.Longitude = parseCoord(first.Longitude)

	if p.cache != nil {
		if data, err := json.Marshal(loc); err == nil {
			_ = p.cache.Set(ctx, cacheKey, data, defaultSearchCacheTTL)
		}
	}

	return &loc, nil
}

// getJSON issues a GET against the OneMap API and decodes the response.
func (p *Provider) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if p.token != "" {
		req.Header.Set("Authorization", p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// parseCoord parses the string coordinates OneMap returns; malformed
// values become 0, which downstream bounds checks reject.
func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
