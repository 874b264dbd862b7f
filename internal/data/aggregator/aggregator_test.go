package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhowell/go-timetrack/internal/core/filter"
	"github.com/mhowell/go-timetrack/internal/core/model"
	"github.com/mhowell/go-timetrack/internal/core/settings"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
)

var now = time.Date(2026, 1, 22, 15, 0, 0, 0, time.UTC)

func twoProjectSession() model.Session {
	return model.Session{
		Sphere: "Work",
		Date:   "2026-01-22",
		Active: []model.ActivePeriod{
			{Start: "09:00:00", Duration: 2000, Project: "ProjectA"},
			{Start: "10:00:00", Duration: 2000, Project: "ProjectB"},
		},
		Breaks: []model.BreakPeriod{
			{Start: "09:40:00", Duration: 1000, Action: "Coffee"},
		},
	}
}

func TestCalculateTotals(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": twoProjectSession(),
	}

	totals := CalculateTotals(sessions, timerange.RangeAllTime, "Work", filter.AllProjects, now)
	assert.Equal(t, 4000, totals.ActiveSeconds)
	assert.Equal(t, 1000, totals.BreakSeconds)
}

func TestCalculateTotalsProjectFilter(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": twoProjectSession(),
	}

	totals := CalculateTotals(sessions, timerange.RangeAllTime, "Work", "ProjectA", now)
	assert.Equal(t, 2000, totals.ActiveSeconds)
	// Breaks are never project-filtered.
	assert.Equal(t, 1000, totals.BreakSeconds)
}

func TestCalculateTotalsSphereFilter(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": twoProjectSession(),
		"2026-01-22_2": {
			Sphere: "Personal",
			Date:   "2026-01-22",
			Active: []model.ActivePeriod{
				{Start: "19:00:00", Duration: 500, Project: "Reading"},
			},
		},
	}

	totals := CalculateTotals(sessions, timerange.RangeAllTime, "Work", filter.AllProjects, now)
	assert.Equal(t, 4000, totals.ActiveSeconds)

	totals = CalculateTotals(sessions, timerange.RangeAllTime, filter.AllSpheres, filter.AllProjects, now)
	assert.Equal(t, 4500, totals.ActiveSeconds)
}

func TestCalculateTotalsDateRange(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": twoProjectSession(),
		"2025-06-01_1": {
			Sphere: "Work",
			Date:   "2025-06-01",
			Active: []model.ActivePeriod{
				{Start: "09:00:00", Duration: 1234, Project: "ProjectA"},
			},
		},
	}

	totals := CalculateTotals(sessions, timerange.RangeToday, filter.AllSpheres, filter.AllProjects, now)
	assert.Equal(t, 4000, totals.ActiveSeconds)
}

func TestCalculateTotalsIdlePeriods(t *testing.T) {
	endTS := int64(1769094000)
	sessions := map[string]model.Session{
		"2026-01-22_1": {
			Sphere: "Work",
			Date:   "2026-01-22",
			IdlePeriods: []model.IdlePeriod{
				// Closed idle counts as break time.
				{Start: "12:00:00", End: "12:05:00", EndTimestamp: &endTS, Duration: 300},
				// Open idle has no final duration yet and is skipped.
				{Start: "14:00:00", Duration: 600},
			},
		},
	}

	totals := CalculateTotals(sessions, timerange.RangeAllTime, filter.AllSpheres, filter.AllProjects, now)
	assert.Equal(t, 0, totals.ActiveSeconds)
	assert.Equal(t, 300, totals.BreakSeconds)
}

func TestCalculateTotalsSplitPeriodCountsWholeDuration(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": {
			Sphere: "Work",
			Date:   "2026-01-22",
			Active: []model.ActivePeriod{
				{
					Start:    "09:00:00",
					Duration: 3600,
					Projects: []model.ProjectSplit{
						{Name: "Platform", Percentage: 60, Duration: 2160, Primary: true},
						{Name: "Reporting", Percentage: 40, Duration: 1440},
					},
				},
			},
		},
	}

	// A split period matched through either entry contributes the
	// whole period duration, matching the one-row-per-period timeline.
	totals := CalculateTotals(sessions, timerange.RangeAllTime, filter.AllSpheres, "Reporting", now)
	assert.Equal(t, 3600, totals.ActiveSeconds)
}

func TestCalculateTotalsEmptyStore(t *testing.T) {
	totals := CalculateTotals(map[string]model.Session{}, timerange.RangeAllTime, filter.AllSpheres, filter.AllProjects, now)
	assert.Equal(t, Totals{}, totals)
}

func TestCards(t *testing.T) {
	sessions := map[string]model.Session{
		"2026-01-22_1": twoProjectSession(),
	}
	cfg := settings.AnalysisSettings{
		CardRanges: []string{timerange.RangeToday, timerange.RangeAllTime},
	}

	cards := Cards(sessions, cfg, filter.AllSpheres, filter.AllProjects, now)
	assert.Len(t, cards, 2)
	assert.Equal(t, timerange.RangeToday, cards[0].RangeName)
	assert.Equal(t, 4000, cards[0].ActiveSeconds)
	assert.Equal(t, timerange.RangeAllTime, cards[1].RangeName)
	assert.Equal(t, 4000, cards[1].ActiveSeconds)
}
