// Package validators provides custom validation functions registered with
// the go-playground validator.
package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// TimezoneValidation validates that a field holds an IANA time zone name
// resolvable by the runtime tz database (e.g. "Europe/Istanbul"). Empty
// values pass so the field can stay optional.
func TimezoneValidation(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}

	_, err := time.LoadLocation(name)
	return err == nil
}

// CivilDateValidation validates a calendar date in YYYY-MM-DD form.
// Empty values pass so the field can stay optional.
func CivilDateValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// CivilTimeValidation validates a wall clock time in HH:MM or HH:MM:SS form.
// Empty values pass so the field can stay optional.
func CivilTimeValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	if _, err := time.Parse("15:04:05", value); err == nil {
		return true
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
