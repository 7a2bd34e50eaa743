// Package ephemeris defines the celestial bodies, zodiac signs and position
// types shared across the application, together with the contract every
// position provider implements.
package ephemeris
