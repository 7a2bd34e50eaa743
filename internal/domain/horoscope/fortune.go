package horoscope

import "github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"

// FortunePoint is the computed Part of Fortune.
type FortunePoint struct {
	Longitude float64        `json:"longitude"`
	Sign      ephemeris.Sign `json:"sign"`
	House     int            `json:"house"`

	// DayChart records which formula applied: true when the Sun stood above
	// the horizon.
	DayChart bool `json:"day_chart"`
}

// PartOfFortune returns the longitude of the Part of Fortune. Day charts use
// ascendant + Moon - Sun, night charts reverse the luminaries.
func PartOfFortune(ascendant, sunLon, moonLon float64, dayChart bool) float64 {
	if dayChart {
		return ephemeris.Normalize(ascendant + moonLon - sunLon)
	}
	return ephemeris.Normalize(ascendant + sunLon - moonLon)
}
