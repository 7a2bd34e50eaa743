package horoscope

import (
	"fmt"
	"time"
)

// CivilMoment builds a chart instant from its civil parts. Date and time both
// missing means "the moment the question is asked", the horary convention.
// A date without a time reads as local midnight; a time without a date falls
// on the current day in the requested zone. An empty timezone means UTC.
func CivilMoment(date, clock, timezone string) (time.Time, error) {
	zoneName := timezone
	if zoneName == "" {
		zoneName = "UTC"
	}
	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone %s: %w", zoneName, err)
	}

	now := time.Now().In(zone)
	if date == "" && clock == "" {
		return now, nil
	}

	day := now
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %s: %w", date, err)
		}
		day = parsed
	}

	var hour, minute, second int
	if clock != "" {
		parsed, err := time.Parse("15:04:05", clock)
		if err != nil {
			parsed, err = time.Parse("15:04", clock)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time %s: %w", clock, err)
			}
		}
		hour, minute, second = parsed.Hour(), parsed.Minute(), parsed.Second()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, zone), nil
}
