//go:build unit
// +build unit

package horoscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseAngle(t *testing.T) {
	assert.InDelta(t, 0, PhaseAngle(100, 100), 1e-9)
	assert.InDelta(t, 180, PhaseAngle(280, 100), 1e-9)
	assert.InDelta(t, 350, PhaseAngle(90, 100), 1e-9)
}

func TestPhaseFromAngle(t *testing.T) {
	tests := []struct {
		angle    float64
		expected MoonPhase
	}{
		{0, NewMoon},
		{10, NewMoon},
		{350, NewMoon},
		{337.5, NewMoon},
		{22.5, WaxingCrescent},
		{45, WaxingCrescent},
		{90, FirstQuarter},
		// Bins are centered on the quarters, so 100 is still First Quarter.
		{100, FirstQuarter},
		{120, WaxingGibbous},
		{135, WaxingGibbous},
		{180, FullMoon},
		{200, FullMoon},
		{210, WaningGibbous},
		{270, LastQuarter},
		{300, WaningCrescent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PhaseFromAngle(tt.angle), "angle %v", tt.angle)
	}
}

func TestIlluminatedFraction(t *testing.T) {
	assert.InDelta(t, 0, IlluminatedFraction(0), 1e-9)
	assert.InDelta(t, 1, IlluminatedFraction(180), 1e-9)
	assert.InDelta(t, 0.5, IlluminatedFraction(90), 1e-9)
	assert.InDelta(t, 0.5, IlluminatedFraction(270), 1e-9)
}
