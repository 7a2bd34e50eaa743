package horoscope

import (
	"fmt"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
)

// ChaldeanOrder lists the seven classical planets from slowest to fastest,
// the sequence planetary hours cycle through.
var ChaldeanOrder = [7]ephemeris.Body{
	ephemeris.Saturn, ephemeris.Jupiter, ephemeris.Mars, ephemeris.Sun,
	ephemeris.Venus, ephemeris.Mercury, ephemeris.Moon,
}

// dayRulers is indexed by time.Weekday, Sunday first.
var dayRulers = [7]ephemeris.Body{
	ephemeris.Sun, ephemeris.Moon, ephemeris.Mars, ephemeris.Mercury,
	ephemeris.Jupiter, ephemeris.Venus, ephemeris.Saturn,
}

// DayRuler returns the planetary ruler of a weekday. The planetary day runs
// sunrise to sunrise, so callers must pass the weekday of the sunrise that
// opened the day, not of the civil date.
func DayRuler(weekday time.Weekday) ephemeris.Body {
	return dayRulers[int(weekday)%7]
}

// PlanetaryHour is one of the twenty-four unequal hours of a planetary day.
type PlanetaryHour struct {
	// Index runs 1 through 24; hour 1 begins at sunrise, hour 13 at sunset.
	Index int

	Ruler   ephemeris.Body
	Start   time.Time
	End     time.Time
	Daytime bool
}

// PlanetaryHours divides a planetary day into its twenty-four hours: twelve
// from sunrise to sunset and twelve from sunset to the next sunrise. The
// first hour is ruled by the day ruler and the sequence then follows the
// Chaldean order.
func PlanetaryHours(dayRuler ephemeris.Body, sunrise, sunset, nextSunrise time.Time) ([]PlanetaryHour, error) {
	if !sunrise.Before(sunset) || !sunset.Before(nextSunrise) {
		return nil, fmt.Errorf("planetary day boundaries out of order: rise %v, set %v, next rise %v",
			sunrise, sunset, nextSunrise)
	}

	start := -1
	for i, body := range ChaldeanOrder {
		if body == dayRuler {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("no Chaldean position for day ruler %s", dayRuler)
	}

	dayHour := sunset.Sub(sunrise) / 12
	nightHour := nextSunrise.Sub(sunset) / 12

	hours := make([]PlanetaryHour, 24)
	for i := 0; i < 24; i++ {
		hour := PlanetaryHour{
			Index:   i + 1,
			Ruler:   ChaldeanOrder[(start+i)%7],
			Daytime: i < 12,
		}

		if hour.Daytime {
			hour.Start = sunrise.Add(time.Duration(i) * dayHour)
			hour.End = sunrise.Add(time.Duration(i+1) * dayHour)
		} else {
			hour.Start = sunset.Add(time.Duration(i-12) * nightHour)
			hour.End = sunset.Add(time.Duration(i-11) * nightHour)
		}

		hours[i] = hour
	}

	// Close the day exactly on the next sunrise to absorb division remainders.
	hours[23].End = nextSunrise

	return hours, nil
}

// HourAt returns the planetary hour containing the instant t.
func HourAt(hours []PlanetaryHour, t time.Time) (PlanetaryHour, error) {
	for _, hour := range hours {
		if !t.Before(hour.Start) && t.Before(hour.End) {
			return hour, nil
		}
	}
	return PlanetaryHour{}, fmt.Errorf("instant %v outside the planetary day", t)
}
