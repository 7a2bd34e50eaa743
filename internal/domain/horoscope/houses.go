package horoscope

import (
	"errors"
	"fmt"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
)

// HouseSystem identifies a method of dividing the ecliptic into houses.
type HouseSystem string

// Supported house systems
const (
	Placidus      HouseSystem = "placidus"
	Regiomontanus HouseSystem = "regiomontanus"
	Porphyry      HouseSystem = "porphyry"
	Equal         HouseSystem = "equal"
	WholeSign     HouseSystem = "whole_sign"
)

// DefaultHouseSystem is used when a request names no system.
const DefaultHouseSystem = Placidus

// ErrCircumpolar is returned by quadrant house systems at latitudes where
// parts of the ecliptic never cross the horizon. Callers fall back to
// Porphyry, which stays defined at every latitude.
var ErrCircumpolar = errors.New("quadrant house system undefined at circumpolar latitude")

// houseSystems indexes the supported systems for parsing.
var houseSystems = map[HouseSystem]bool{
	Placidus:      true,
	Regiomontanus: true,
	Porphyry:      true,
	Equal:         true,
	WholeSign:     true,
}

// ParseHouseSystem validates a house system name. The empty string resolves
// to DefaultHouseSystem.
func ParseHouseSystem(name string) (HouseSystem, error) {
	if name == "" {
		return DefaultHouseSystem, nil
	}
	system := HouseSystem(name)
	if !houseSystems[system] {
		return "", fmt.Errorf("unsupported house system: %s", name)
	}
	return system, nil
}

// Quadrant reports whether the system derives intermediate cusps from the
// horizon and meridian and is therefore undefined at circumpolar latitudes.
func (s HouseSystem) Quadrant() bool {
	return s == Placidus || s == Regiomontanus
}

// Cusps holds the twelve house cusps and the chart angles, all as ecliptic
// longitudes in degrees.
type Cusps struct {
	// Houses holds the cusps of houses 1 through 12 at indices 0 through 11.
	Houses [12]float64

	Ascendant float64
	Midheaven float64
}

// Descendant returns the western horizon point opposite the ascendant.
func (c *Cusps) Descendant() float64 {
	return ephemeris.Normalize(c.Ascendant + 180)
}

// ImumCoeli returns the anti-culmination point opposite the midheaven.
func (c *Cusps) ImumCoeli() float64 {
	return ephemeris.Normalize(c.Midheaven + 180)
}

// HouseOf returns the house (1 through 12) holding the given ecliptic
// longitude. A body exactly on a cusp belongs to the house the cusp begins.
func (c *Cusps) HouseOf(lon float64) int {
	for i := 0; i < 12; i++ {
		start := c.Houses[i]
		end := c.Houses[(i+1)%12]

		span := ephemeris.Normalize(end - start)
		if span == 0 {
			continue
		}
		if ephemeris.Normalize(lon-start) < span {
			return i + 1
		}
	}
	// Unreachable for well-formed cusps; degenerate input lands in house 1.
	return 1
}
