package ephemeris

import "math"

// BodyPosition is an apparent geocentric ecliptic position of date. The
// json tags define the wire form charts are served and archived in.
type BodyPosition struct {
	Body Body `json:"body"`

	// Longitude is the apparent ecliptic longitude in degrees, [0,360).
	Longitude float64 `json:"longitude"`

	// Latitude is the ecliptic latitude in degrees.
	Latitude float64 `json:"latitude"`

	// Distance is the geocentric distance, in AU for planets and km for
	// the Moon. Zero for the lunar node.
	Distance float64 `json:"distance"`

	// Speed is the instantaneous daily motion in longitude, degrees/day.
	// Negative values indicate retrograde motion.
	Speed float64 `json:"speed"`

	Retrograde bool `json:"retrograde"`
}

// Sign returns the zodiac sign holding the position.
func (p BodyPosition) Sign() Sign {
	return SignFromLongitude(p.Longitude)
}

// SignDegree returns the position within its sign, in [0,30).
func (p BodyPosition) SignDegree() float64 {
	return DegreeInSign(p.Longitude)
}

// Normalize wraps an angle in degrees into [0,360).
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// Separation returns the angular separation of two ecliptic longitudes,
// folded into [0,180].
func Separation(a, b float64) float64 {
	d := Normalize(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedDelta returns the shortest signed arc from a to b in degrees,
// in (-180,180].
func SignedDelta(a, b float64) float64 {
	d := Normalize(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
