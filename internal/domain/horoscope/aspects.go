package horoscope

import (
	"math"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
)

// AspectType identifies one of the five classical (Ptolemaic) aspects.
type AspectType string

// Classical aspects
const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
)

// aspectDef pairs an aspect with its exact angle and allowed orb.
type aspectDef struct {
	kind  AspectType
	angle float64
	orb   float64
}

// Classical orbs: 8 for conjunction and opposition, 7 for square and trine,
// 6 for sextile.
var aspectDefs = []aspectDef{
	{Conjunction, 0, 8},
	{Sextile, 60, 6},
	{Square, 90, 7},
	{Trine, 120, 7},
	{Opposition, 180, 8},
}

// AspectAngle returns the exact angle of an aspect type, or -1 for an
// unknown type.
func AspectAngle(kind AspectType) float64 {
	for _, def := range aspectDefs {
		if def.kind == kind {
			return def.angle
		}
	}
	return -1
}

// Aspect is an angular relation between two chart bodies.
type Aspect struct {
	Body1 ephemeris.Body `json:"body1"`
	Body2 ephemeris.Body `json:"body2"`
	Type  AspectType     `json:"type"`

	// Angle is the exact angle of the aspect type in degrees.
	Angle float64 `json:"angle"`

	// Orb is the deviation from exactness in degrees.
	Orb float64 `json:"orb"`

	// Applying reports whether the faster body is still closing the orb;
	// a separating aspect has already perfected.
	Applying bool `json:"applying"`
}

// DetectAspects finds every classical aspect between the given positions.
// Pairs are examined in input order, so feeding ephemeris.ChartBodies order
// keeps the output stable.
func DetectAspects(positions []ephemeris.BodyPosition) []Aspect {
	aspects := []Aspect{}

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if aspect, ok := aspectBetween(positions[i], positions[j]); ok {
				aspects = append(aspects, aspect)
			}
		}
	}

	return aspects
}

// aspectBetween checks a single pair against the classical aspect table.
func aspectBetween(p1, p2 ephemeris.BodyPosition) (Aspect, bool) {
	separation := ephemeris.Separation(p1.Longitude, p2.Longitude)

	for _, def := range aspectDefs {
		orb := math.Abs(separation - def.angle)
		if orb > def.orb {
			continue
		}

		return Aspect{
			Body1:    p1.Body,
			Body2:    p2.Body,
			Type:     def.kind,
			Angle:    def.angle,
			Orb:      orb,
			Applying: applying(p1, p2, def.angle),
		}, true
	}

	return Aspect{}, false
}

// applying reports whether the separation is moving toward the exact angle.
// The rate of the folded separation flips sign when the raw difference
// crosses 180 degrees.
func applying(p1, p2 ephemeris.BodyPosition, exact float64) bool {
	diff := ephemeris.Normalize(p1.Longitude - p2.Longitude)

	separationRate := p1.Speed - p2.Speed
	if diff > 180 {
		separationRate = -separationRate
	}

	separation := ephemeris.Separation(p1.Longitude, p2.Longitude)
	orbRate := separationRate
	if separation < exact {
		orbRate = -orbRate
	}

	return orbRate < 0
}
