// Package horoscope holds the pure astrology layer: house systems, aspects,
// essential dignities, moon phases, planetary hours and the chart aggregate,
// together with the contracts implemented by the astrometry infrastructure.
package horoscope
