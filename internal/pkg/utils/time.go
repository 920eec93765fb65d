package utils

import (
	"medipass-service/internal/pkg/constvars"
	"time"
)

// NormalizeTimeHHMM trims schedule times stored as HH:MM:SS down to HH:MM.
func NormalizeTimeHHMM(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}

// MinutesOfDay converts an HH:MM string to minutes since midnight.
func MinutesOfDay(value string) (int, error) {
	parsed, err := time.Parse(constvars.TimeLayoutHHMM, NormalizeTimeHHMM(value))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, err := time.Parse(constvars.TimeLayoutHHMM, NormalizeTimeHHMM(requestedTime))
	if err != nil {
		return false
	}
	start, err := time.Parse(constvars.TimeLayoutHHMM, NormalizeTimeHHMM(startTime))
	if err != nil {
		return false
	}
	end, err := time.Parse(constvars.TimeLayoutHHMM, NormalizeTimeHHMM(endTime))
	if err != nil {
		return false
	}

	return requested.Equal(start) || (requested.After(start) && requested.Before(end))
}

func IsSameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
