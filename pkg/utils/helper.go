package utils

import (
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

const travelDateLayout = "2006-01-02"

// ParseTravelDate parses a calendar date with no time component. Bookings
// compare travel dates by day only.
func ParseTravelDate(value string) (time.Time, error) {
	return time.Parse(travelDateLayout, value)
}

func FormatTravelDate(date time.Time) string {
	return date.Format(travelDateLayout)
}
