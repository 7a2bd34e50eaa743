package models

import (
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
)

// GeocodeEntryModel is the GORM database model for cached geocoder lookups
// (infrastructure concern)
type GeocodeEntryModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Query           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255)"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (GeocodeEntryModel) TableName() string {
	return "geocode_entries"
}

// ToDomain converts GORM model to domain entity
func (m *GeocodeEntryModel) ToDomain() *geo.GeocodeEntry {
	return &geo.GeocodeEntry{
		ID:              m.ID,
		Query:           m.Query,
		Name:            m.Name,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GeocodeEntryModel) FromDomain(e *geo.GeocodeEntry) {
	m.ID = e.ID
	m.Query = e.Query
	m.Name = e.Name
	m.Latitude = e.Latitude
	m.Longitude = e.Longitude
	m.DateTimeCreated = e.DateTimeCreated
}
