//go:build unit
// +build unit

package horoscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHouseSystem(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  HouseSystem
		shouldErr bool
	}{
		{"empty defaults to placidus", "", Placidus, false},
		{"placidus", "placidus", Placidus, false},
		{"regiomontanus", "regiomontanus", Regiomontanus, false},
		{"porphyry", "porphyry", Porphyry, false},
		{"equal", "equal", Equal, false},
		{"whole sign", "whole_sign", WholeSign, false},
		{"unknown system", "koch", "", true},
		{"case matters", "Placidus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, err := ParseHouseSystem(tt.input)
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, system)
			}
		})
	}
}

func TestHouseSystemQuadrant(t *testing.T) {
	assert.True(t, Placidus.Quadrant())
	assert.True(t, Regiomontanus.Quadrant())
	assert.False(t, Porphyry.Quadrant())
	assert.False(t, Equal.Quadrant())
	assert.False(t, WholeSign.Quadrant())
}

func equalCusps(ascendant float64) *Cusps {
	c := &Cusps{Ascendant: ascendant, Midheaven: ascendant - 90}
	for i := 0; i < 12; i++ {
		c.Houses[i] = ascendant + float64(i)*30
		for c.Houses[i] >= 360 {
			c.Houses[i] -= 360
		}
	}
	return c
}

func TestCuspsHouseOf(t *testing.T) {
	cusps := equalCusps(10)

	tests := []struct {
		lon      float64
		expected int
	}{
		{10, 1},       // exactly on the first cusp
		{39.99, 1},    // last arc of the first house
		{40, 2},       // exactly on the second cusp
		{185, 6},      // mid chart
		{350, 12},     // wraps across the first cusp
		{9.99, 12},    // just short of the ascendant
		{0, 12},       // zero point of the zodiac
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cusps.HouseOf(tt.lon), "longitude %v", tt.lon)
	}
}

func TestCuspsAngles(t *testing.T) {
	cusps := &Cusps{Ascendant: 100, Midheaven: 10}

	assert.InDelta(t, 280, cusps.Descendant(), 1e-9)
	assert.InDelta(t, 190, cusps.ImumCoeli(), 1e-9)

	wrapped := &Cusps{Ascendant: 350, Midheaven: 260}
	assert.InDelta(t, 170, wrapped.Descendant(), 1e-9)
	assert.InDelta(t, 80, wrapped.ImumCoeli(), 1e-9)
}
