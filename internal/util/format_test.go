package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 45, "45s"},
		{"exact minute", 60, "1m 0s"},
		{"minutes and seconds", 330, "5m 30s"},
		{"exact hour", 3600, "1h 0m"},
		{"hours and minutes", 7500, "2h 5m"},
		{"hours drop seconds", 3661, "1h 1m"},
		{"negative clamps to zero", -10, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"whole number", 50, "50"},
		{"hundred", 100, "100"},
		{"one decimal", 33.5, "33.5"},
		{"two decimals", 62.25, "62.25"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(tt.pct))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "3600", FormatInt(3600))
}
