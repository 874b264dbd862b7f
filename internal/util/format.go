package util

import (
	"fmt"
)

// FormatSeconds renders a duration in seconds for display: "2h 5m"
// above an hour, "5m 30s" above a minute, "45s" below.
func FormatSeconds(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatInt renders an integer duration column value.
func FormatInt(n int) string {
	return fmt.Sprintf("%d", n)
}

// FormatPercentage renders a split percentage without trailing zeros,
// so 50.0 prints as "50" and 33.5 as "33.5".
func FormatPercentage(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%g", p)
}
