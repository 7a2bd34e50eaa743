package ephemeris

// Body identifies a celestial body carried in a chart.
type Body string

// Bodies computed by the position providers
const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"

	// NorthNode is the mean ascending node of the lunar orbit.
	NorthNode Body = "North Node"
)

// ChartBodies lists every body included in a computed chart, in traditional
// display order.
var ChartBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn,
	Uranus, Neptune, Pluto, NorthNode,
}

// ClassicalBodies lists the seven traditional planets used for horary
// judgements such as the void-of-course Moon.
var ClassicalBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}
