// Package geocoding resolves free-text place names through a
// Nominatim-compatible search endpoint, with an optional persisted cache in
// front of it. Lookups degrade to the configured fallback location instead
// of failing, so a chart can always be cast.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// maxResponseBytes bounds how much of a geocoder response is read.
const maxResponseBytes = 1 << 20

// nominatimResult is one row of a Nominatim search response. Coordinates
// arrive as strings on the wire.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type nominatimGeocoder struct {
	settings *config.GeocoderSettings
	client   *http.Client
	cache    geo.GeocodeCacheRepository
	logger   logger.Logger
}

// NewNominatimGeocoder creates a Geocoder backed by a Nominatim-compatible
// endpoint. The cache repository may be nil, which disables caching
// regardless of the settings.
func NewNominatimGeocoder(settings *config.GeocoderSettings, cache geo.GeocodeCacheRepository, logger logger.Logger) (geo.Geocoder, error) {
	if settings == nil {
		return nil, fmt.Errorf("geocoder settings must not be nil")
	}

	return &nominatimGeocoder{
		settings: settings,
		client:   &http.Client{Timeout: time.Duration(settings.TimeoutSeconds) * time.Second},
		cache:    cache,
		logger:   logger,
	}, nil
}

func (g *nominatimGeocoder) Resolve(ctx context.Context, name string) (*geo.Location, error) {
	query := normalizeQuery(name)
	if query == "" {
		return g.fallback(), nil
	}

	if cached := g.fromCache(ctx, query); cached != nil {
		return cached, nil
	}

	location, err := g.search(ctx, query)
	if err != nil {
		g.logger.Warn(fmt.Sprintf("Geocoding %q failed, falling back to %s: %v", name, g.settings.FallbackName, err))
		return g.fallback(), nil
	}

	g.store(ctx, query, location)
	return location, nil
}

func (g *nominatimGeocoder) search(ctx context.Context, query string) (*geo.Location, error) {
	endpoint, err := url.Parse(g.settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder base URL: %w", err)
	}
	endpoint = endpoint.JoinPath("search")
	endpoint.RawQuery = url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", g.settings.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results for query %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	return &geo.Location{
		Name:      results[0].DisplayName,
		Latitude:  lat,
		Longitude: lon,
		Source:    geo.SourceNominatim,
	}, nil
}

// fromCache returns a cached resolution for the query, or nil.
func (g *nominatimGeocoder) fromCache(ctx context.Context, query string) *geo.Location {
	if g.cache == nil || !g.settings.CacheEnabled {
		return nil
	}

	entry, err := g.cache.GetByQuery(ctx, query)
	if err != nil || entry == nil {
		return nil
	}
	return &geo.Location{
		Name:      entry.Name,
		Latitude:  entry.Latitude,
		Longitude: entry.Longitude,
		Source:    geo.SourceCache,
	}
}

// store caches a successful resolution, best effort.
func (g *nominatimGeocoder) store(ctx context.Context, query string, location *geo.Location) {
	if g.cache == nil || !g.settings.CacheEnabled {
		return
	}

	entry := &geo.GeocodeEntry{
		ID:              uuid.New().String(),
		Query:           query,
		Name:            location.Name,
		Latitude:        location.Latitude,
		Longitude:       location.Longitude,
		DateTimeCreated: time.Now(),
	}
	if err := g.cache.Create(ctx, entry); err != nil {
		g.logger.Warn(fmt.Sprintf("Failed to cache geocode result for %q: %v", query, err))
	}
}

func (g *nominatimGeocoder) fallback() *geo.Location {
	return &geo.Location{
		Name:      g.settings.FallbackName,
		Latitude:  g.settings.FallbackLatitude,
		Longitude: g.settings.FallbackLongitude,
		Source:    geo.SourceFallback,
	}
}

// normalizeQuery canonicalizes a place name for lookups and cache keys.
func normalizeQuery(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
