package v1

import (
	"encoding/json"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
)

// HoroscopeRequest carries the parameters a chart is cast for. All fields are
// optional: a missing date and time means "now", a missing location falls
// back to the configured default site.
type HoroscopeRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`

	// Location is a free-text place name resolved through the geocoder.
	// Explicit coordinates take precedence when both are given.
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	HouseSystem string `json:"house_system"`
	Question    string `json:"question"`
}

// ChartInput maps the request onto the domain input type.
func (r *HoroscopeRequest) ChartInput() *horoscope.ChartInput {
	return &horoscope.ChartInput{
		Date:         r.Date,
		Time:         r.Time,
		Timezone:     r.Timezone,
		LocationName: r.Location,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		HouseSystem:  r.HouseSystem,
		Question:     r.Question,
	}
}

// Validate for validating HoroscopeRequest struct
func (r *HoroscopeRequest) Validate() error {
	return r.ChartInput().Validate()
}

// PositionsRequest carries the moment raw body positions are requested for.
type PositionsRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// PositionsInput maps the request onto the domain input type.
func (r *PositionsRequest) PositionsInput() *horoscope.PositionsInput {
	return &horoscope.PositionsInput{
		Date:     r.Date,
		Time:     r.Time,
		Timezone: r.Timezone,
	}
}

// Validate for validating PositionsRequest struct
func (r *PositionsRequest) Validate() error {
	return r.PositionsInput().Validate()
}

// HealthResponse is the payload of the health probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// InfoResponse confirms an operation that yields no payload.
type InfoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HoroscopeResponse is the envelope a computed chart is served in. The chart
// fields are promoted to the top level next to the success flag.
type HoroscopeResponse struct {
	Success bool `json:"success"`
	*horoscope.Chart
}

// PositionsResponse is the envelope raw positions are served in.
type PositionsResponse struct {
	Success bool `json:"success"`
	*horoscope.PositionSet
}

// ChartRecordResponse is an archived chart as served by the archive routes.
// Chart holds the full serialized chart and is omitted from listings.
type ChartRecordResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"date_time_created"`
	Question        string    `json:"question,omitempty"`

	ChartTime time.Time `json:"chart_time"`
	JulianDay float64   `json:"julian_day"`
	Timezone  string    `json:"timezone,omitempty"`

	LocationName   string  `json:"location_name,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LocationSource string  `json:"location_source,omitempty"`

	HouseSystem string  `json:"house_system"`
	Ascendant   float64 `json:"ascendant"`
	Midheaven   float64 `json:"midheaven"`
	SunSign     string  `json:"sun_sign"`
	MoonSign    string  `json:"moon_sign"`

	Chart json.RawMessage `json:"chart,omitempty"`
}

// ChartArchiveResponse is the envelope a newly archived chart is served in.
type ChartArchiveResponse struct {
	Success bool `json:"success"`
	ChartRecordResponse
}

// ChartListResponse is the envelope chart listings are served in.
type ChartListResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Charts  []ChartRecordResponse `json:"charts"`
}

func newChartRecordResponse(record *charts.ChartRecord, includeChart bool) ChartRecordResponse {
	response := ChartRecordResponse{
		ID:              record.ID,
		DateTimeCreated: record.DateTimeCreated,
		Question:        record.Question,
		ChartTime:       record.ChartTime,
		JulianDay:       record.JulianDay,
		Timezone:        record.Timezone,
		LocationName:    record.LocationName,
		Latitude:        record.Latitude,
		Longitude:       record.Longitude,
		LocationSource:  record.LocationSource,
		HouseSystem:     record.HouseSystem,
		Ascendant:       record.Ascendant,
		Midheaven:       record.Midheaven,
		SunSign:         record.SunSign,
		MoonSign:        record.MoonSign,
	}
	if includeChart {
		response.Chart = json.RawMessage(record.Payload)
	}
	return response
}
