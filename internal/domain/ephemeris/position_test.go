//go:build unit
// +build unit

package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-5, 355},
		{-725, 355},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Normalize(tt.input), 1e-9)
	}
}

func TestSeparation(t *testing.T) {
	assert.InDelta(t, 90, Separation(0, 90), 1e-9)
	assert.InDelta(t, 90, Separation(90, 0), 1e-9)
	assert.InDelta(t, 180, Separation(10, 190), 1e-9)
	assert.InDelta(t, 20, Separation(350, 10), 1e-9)
	assert.InDelta(t, 0, Separation(123.4, 123.4), 1e-9)
}

func TestSignedDelta(t *testing.T) {
	assert.InDelta(t, 20, SignedDelta(350, 10), 1e-9)
	assert.InDelta(t, -20, SignedDelta(10, 350), 1e-9)
	assert.InDelta(t, 180, SignedDelta(0, 180), 1e-9)
	assert.InDelta(t, -90, SignedDelta(90, 0), 1e-9)
}

func TestBodyPositionSign(t *testing.T) {
	p := BodyPosition{Body: Moon, Longitude: 133.16}

	assert.Equal(t, Leo, p.Sign())
	assert.InDelta(t, 13.16, p.SignDegree(), 1e-9)
}
