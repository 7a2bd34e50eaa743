package ephemeris

import "math"

// Sign identifies a tropical zodiac sign.
type Sign string

// The twelve signs in zodiacal order
const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

var signOrder = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// SignFromLongitude maps an ecliptic longitude in degrees to its zodiac sign.
func SignFromLongitude(lon float64) Sign {
	idx := int(math.Floor(Normalize(lon) / 30))
	return signOrder[idx%12]
}

// DegreeInSign returns the position within the sign, in [0,30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(Normalize(lon), 30)
}

// Index returns the zodiacal index of the sign, 0 for Aries through 11 for
// Pisces, or -1 for an unknown sign.
func (s Sign) Index() int {
	for i, sign := range signOrder {
		if sign == s {
			return i
		}
	}
	return -1
}

// Opposite returns the sign 180 degrees away.
func (s Sign) Opposite() Sign {
	idx := s.Index()
	if idx < 0 {
		return s
	}
	return signOrder[(idx+6)%12]
}
