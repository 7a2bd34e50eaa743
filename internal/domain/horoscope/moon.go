package horoscope

import (
	"math"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
)

// MoonPhase names one of the eight conventional lunation phases.
type MoonPhase string

// The eight phases, each spanning 45 degrees of phase angle
const (
	NewMoon        MoonPhase = "New Moon"
	WaxingCrescent MoonPhase = "Waxing Crescent"
	FirstQuarter   MoonPhase = "First Quarter"
	WaxingGibbous  MoonPhase = "Waxing Gibbous"
	FullMoon       MoonPhase = "Full Moon"
	WaningGibbous  MoonPhase = "Waning Gibbous"
	LastQuarter    MoonPhase = "Last Quarter"
	WaningCrescent MoonPhase = "Waning Crescent"
)

var phaseBins = [8]MoonPhase{
	NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
	FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
}

// PhaseAngle returns the elongation of the Moon from the Sun in ecliptic
// longitude, in [0,360). Zero is the new moon, 180 the full moon.
func PhaseAngle(moonLon, sunLon float64) float64 {
	return ephemeris.Normalize(moonLon - sunLon)
}

// PhaseFromAngle maps a phase angle to its named phase. Bins are centered on
// the cardinal lunations, so New Moon covers [337.5,360) and [0,22.5).
func PhaseFromAngle(angle float64) MoonPhase {
	idx := int(math.Floor(ephemeris.Normalize(angle+22.5) / 45))
	return phaseBins[idx%8]
}

// IlluminatedFraction approximates the sunlit fraction of the lunar disc
// from the phase angle, in [0,1].
func IlluminatedFraction(angle float64) float64 {
	return (1 - math.Cos(angle*math.Pi/180)) / 2
}

// MoonInfo summarizes the lunar condition of a chart. In horary practice a
// void-of-course Moon argues that nothing will come of the matter.
type MoonInfo struct {
	Sign         ephemeris.Sign `json:"sign"`
	Phase        MoonPhase      `json:"phase"`
	PhaseAngle   float64        `json:"phase_angle"`
	Illumination float64        `json:"illumination"`

	// VoidOfCourse is true when the Moon perfects no further classical
	// aspect to a traditional planet before leaving its sign.
	VoidOfCourse bool `json:"void_of_course"`

	// VoidUntil is the next sign ingress, set only while void of course.
	VoidUntil *time.Time `json:"void_until,omitempty"`
}
