// Package utils provides small shared helpers for request parameter handling.
package utils

import "strconv"

// ConvertToInt parses s as an integer, returning 0 when parsing fails.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToFloat64 parses s as a float, returning ok=false when parsing fails.
func ConvertToFloat64(s string) (float64, bool) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
