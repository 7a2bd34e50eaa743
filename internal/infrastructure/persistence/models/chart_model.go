package models

import (
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
)

// ChartModel is the GORM database model for archived charts (infrastructure concern)
type ChartModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null;index"`

	Question  string    `gorm:"type:varchar(512)"`
	ChartTime time.Time `gorm:"not null;index"`
	JulianDay float64   `gorm:"not null"`
	Timezone  string    `gorm:"type:varchar(64)"`

	LocationName   string  `gorm:"type:varchar(255)"`
	Latitude       float64 `gorm:"not null"`
	Longitude      float64 `gorm:"not null"`
	LocationSource string  `gorm:"type:varchar(32)"`

	HouseSystem string  `gorm:"type:varchar(20);not null"`
	Ascendant   float64 `gorm:"not null"`
	Midheaven   float64 `gorm:"not null"`
	SunSign     string  `gorm:"type:varchar(20);not null;index"`
	MoonSign    string  `gorm:"type:varchar(20);not null;index"`

	// Payload carries the full serialized chart. Summary columns above exist
	// for filtering without unpacking it.
	Payload string `gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM
func (ChartModel) TableName() string {
	return "charts"
}

// ToDomain converts GORM model to domain entity
func (m *ChartModel) ToDomain() *charts.ChartRecord {
	return &charts.ChartRecord{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Question:        m.Question,
		ChartTime:       m.ChartTime,
		JulianDay:       m.JulianDay,
		Timezone:        m.Timezone,
		LocationName:    m.LocationName,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		LocationSource:  m.LocationSource,
		HouseSystem:     m.HouseSystem,
		Ascendant:       m.Ascendant,
		Midheaven:       m.Midheaven,
		SunSign:         m.SunSign,
		MoonSign:        m.MoonSign,
		Payload:         m.Payload,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChartModel) FromDomain(r *charts.ChartRecord) {
	m.ID = r.ID
	m.DateTimeCreated = r.DateTimeCreated
	m.Question = r.Question
	m.ChartTime = r.ChartTime
	m.JulianDay = r.JulianDay
	m.Timezone = r.Timezone
	m.LocationName = r.LocationName
	m.Latitude = r.Latitude
	m.Longitude = r.Longitude
	m.LocationSource = r.LocationSource
	m.HouseSystem = r.HouseSystem
	m.Ascendant = r.Ascendant
	m.Midheaven = r.Midheaven
	m.SunSign = r.SunSign
	m.MoonSign = r.MoonSign
	m.Payload = r.Payload
}
