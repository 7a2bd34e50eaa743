package astrometry

import (
	"github.com/soniakeys/meeus/v3/base"
)

// TT converts a Julian Day from universal to terrestrial time, the time scale
// the planetary and lunar theories are formulated in.
func TT(jdUT float64) float64 {
	return jdUT + DeltaT(jdUT)/86400
}

// DeltaT returns TT-UT in seconds, using the Espenak and Meeus polynomial
// expressions. Each polynomial covers one historical segment; the last two
// extrapolate beyond 2050.
func DeltaT(jdUT float64) float64 {
	y := 2000 + (jdUT-base.J2000)/base.JulianYear
	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return base.Horner(u, 10583.6, -1014.41, 33.78311, -5.952053,
			-0.1798452, 0.022174192, 0.0090316521)
	case y < 1600:
		u := (y - 1000) / 100
		return base.Horner(u, 1574.2, -556.01, 71.23472, 0.319781,
			-0.8503463, -0.005050998, 0.0083572073)
	case y < 1700:
		t := y - 1600
		return base.Horner(t, 120, -0.9808, -0.01532, 1/7129.0)
	case y < 1800:
		t := y - 1700
		return base.Horner(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1/1174000.0)
	case y < 1860:
		t := y - 1800
		return base.Horner(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436,
			0.0000121272, -0.0000001699, 0.000000000875)
	case y < 1900:
		t := y - 1860
		return base.Horner(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624,
			1/233174.0)
	case y < 1920:
		t := y - 1900
		return base.Horner(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case y < 1941:
		t := y - 1920
		return base.Horner(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case y < 1961:
		t := y - 1950
		return base.Horner(t, 29.07, 0.407, -1/233.0, 1/2547.0)
	case y < 1986:
		t := y - 1975
		return base.Horner(t, 45.45, 1.067, -1/260.0, -1/718.0)
	case y < 2005:
		t := y - 2000
		return base.Horner(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814,
			0.00002373599)
	case y < 2050:
		t := y - 2000
		return base.Horner(t, 62.92, 0.32217, 0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}
