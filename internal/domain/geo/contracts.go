package geo

import (
	"context"
	"time"
)

// Geocoder defines methods for resolving free-text place names into
// coordinates.
type Geocoder interface {
	// Resolve converts a location name into a Location.
	// It never fails hard: when the lookup errors or yields no match the
	// configured fallback location is returned with Source set accordingly.
	Resolve(ctx context.Context, name string) (*Location, error)
}

// GeocodeCacheRepository defines the interface for persisted geocoder lookups
type GeocodeCacheRepository interface {
	Create(ctx context.Context, entry *GeocodeEntry) error
	GetByQuery(ctx context.Context, query string) (*GeocodeEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
