// Package astrometry implements the position, house and rise/set contracts
// on top of the meeus astronomical algorithms library. Planetary positions
// come from the VSOP87 data set when the configured ephemeris directory
// holds its files, and otherwise from a built-in lower-precision theory, so
// the service keeps working without any data download.
package astrometry
