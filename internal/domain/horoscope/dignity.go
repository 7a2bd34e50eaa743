package horoscope

import "github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"

// Dignity grades how strongly a planet is placed in a sign, using the
// traditional essential dignities.
type Dignity string

// Essential dignities in order of strength
const (
	DignityRulership  Dignity = "rulership"
	DignityExaltation Dignity = "exaltation"
	DignityDetriment  Dignity = "detriment"
	DignityFall       Dignity = "fall"
	DignityPeregrine  Dignity = "peregrine"
)

// rulerships maps each sign to its traditional ruler.
var rulerships = map[ephemeris.Sign]ephemeris.Body{
	ephemeris.Aries:       ephemeris.Mars,
	ephemeris.Taurus:      ephemeris.Venus,
	ephemeris.Gemini:      ephemeris.Mercury,
	ephemeris.Cancer:      ephemeris.Moon,
	ephemeris.Leo:         ephemeris.Sun,
	ephemeris.Virgo:       ephemeris.Mercury,
	ephemeris.Libra:       ephemeris.Venus,
	ephemeris.Scorpio:     ephemeris.Mars,
	ephemeris.Sagittarius: ephemeris.Jupiter,
	ephemeris.Capricorn:   ephemeris.Saturn,
	ephemeris.Aquarius:    ephemeris.Saturn,
	ephemeris.Pisces:      ephemeris.Jupiter,
}

// exaltations maps each classical planet to the sign of its exaltation.
var exaltations = map[ephemeris.Body]ephemeris.Sign{
	ephemeris.Sun:     ephemeris.Aries,
	ephemeris.Moon:    ephemeris.Taurus,
	ephemeris.Mercury: ephemeris.Virgo,
	ephemeris.Venus:   ephemeris.Pisces,
	ephemeris.Mars:    ephemeris.Capricorn,
	ephemeris.Jupiter: ephemeris.Cancer,
	ephemeris.Saturn:  ephemeris.Libra,
}

// RulerOf returns the traditional ruler of a sign.
func RulerOf(sign ephemeris.Sign) ephemeris.Body {
	return rulerships[sign]
}

// DignityOf grades the placement of a body in a sign. Bodies outside the
// traditional seven are always peregrine.
func DignityOf(body ephemeris.Body, sign ephemeris.Sign) Dignity {
	if _, classical := exaltations[body]; !classical {
		return DignityPeregrine
	}

	if rulerships[sign] == body {
		return DignityRulership
	}
	if exaltations[body] == sign {
		return DignityExaltation
	}
	if rulerships[sign.Opposite()] == body {
		return DignityDetriment
	}
	if exaltations[body] == sign.Opposite() {
		return DignityFall
	}

	return DignityPeregrine
}
