package ephemeris

// PositionProvider computes apparent geocentric positions for a moment given
// as a Julian Day in Universal Time. Implementations handle the conversion
// to dynamical time internally.
type PositionProvider interface {
	// Positions returns the positions of every body in ChartBodies.
	Positions(jdUT float64) ([]BodyPosition, error)

	// Position returns the position of a single body.
	Position(jdUT float64, body Body) (BodyPosition, error)

	// FullPrecision reports whether the full VSOP87 data set backs the
	// provider, as opposed to the built-in lower-precision series.
	FullPrecision() bool
}
