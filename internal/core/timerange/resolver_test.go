package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Thursday, 2026-01-22 15:04:05.
var now = time.Date(2026, 1, 22, 15, 4, 5, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveNamedRanges(t *testing.T) {
	tests := []struct {
		name      string
		rangeName string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			rangeName: RangeToday,
			wantStart: day(2026, 1, 22),
			wantEnd:   day(2026, 1, 23),
		},
		{
			name:      "yesterday",
			rangeName: RangeYesterday,
			wantStart: day(2026, 1, 21),
			wantEnd:   day(2026, 1, 22),
		},
		{
			name:      "last 7 days",
			rangeName: RangeLast7Days,
			wantStart: day(2026, 1, 16),
			wantEnd:   day(2026, 1, 23),
		},
		{
			name:      "last 14 days",
			rangeName: RangeLast14Days,
			wantStart: day(2026, 1, 9),
			wantEnd:   day(2026, 1, 23),
		},
		{
			name:      "last 30 days",
			rangeName: RangeLast30Days,
			wantStart: day(2025, 12, 24),
			wantEnd:   day(2026, 1, 23),
		},
		{
			name:      "this week starts Monday",
			rangeName: RangeThisWeek,
			wantStart: day(2026, 1, 19),
			wantEnd:   day(2026, 1, 26),
		},
		{
			name:      "last week",
			rangeName: RangeLastWeek,
			wantStart: day(2026, 1, 12),
			wantEnd:   day(2026, 1, 19),
		},
		{
			name:      "this month",
			rangeName: RangeThisMonth,
			wantStart: day(2026, 1, 1),
			wantEnd:   day(2026, 2, 1),
		},
		{
			name:      "last month",
			rangeName: RangeLastMonth,
			wantStart: day(2025, 12, 1),
			wantEnd:   day(2026, 1, 1),
		},
		{
			name:      "all time",
			rangeName: RangeAllTime,
			wantStart: day(2000, 1, 1),
			wantEnd:   day(2100, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Resolve(tt.rangeName, now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveTodaySpansOneDay(t *testing.T) {
	start, end := Resolve(RangeToday, now)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestResolveLast7DaysSpansSevenDays(t *testing.T) {
	start, end := Resolve(RangeLast7Days, now)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
	assert.Equal(t, day(2026, 1, 23), end, "ends at tomorrow midnight")
}

func TestResolveWeekOnMonday(t *testing.T) {
	// Monday itself has offset zero.
	monday := time.Date(2026, 1, 19, 8, 0, 0, 0, time.UTC)
	start, end := Resolve(RangeThisWeek, monday)
	assert.Equal(t, day(2026, 1, 19), start)
	assert.Equal(t, day(2026, 1, 26), end)
}

func TestResolveWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 1, 25, 8, 0, 0, 0, time.UTC)
	start, _ := Resolve(RangeThisWeek, sunday)
	assert.Equal(t, day(2026, 1, 19), start)
}

func TestResolveCustom(t *testing.T) {
	start, end := Resolve("Custom: 2026-02-14", now)
	assert.Equal(t, day(2026, 2, 14), start)
	assert.Equal(t, day(2026, 2, 15), end)
}

func TestResolveFallsBackToToday(t *testing.T) {
	todayStart, todayEnd := Resolve(RangeToday, now)

	tests := []struct {
		name      string
		rangeName string
	}{
		{"unknown name", "Next Fortnight"},
		{"empty name", ""},
		{"invalid calendar date", "Custom: 2026-02-30"},
		{"garbage custom payload", "Custom: not-a-date"},
		{"custom missing payload", "Custom: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Resolve(tt.rangeName, now)
			assert.Equal(t, todayStart, start)
			assert.Equal(t, todayEnd, end)
		})
	}
}

func TestResolveMonthBoundaries(t *testing.T) {
	// Last Month from a January vantage crosses the year boundary.
	jan := time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC)
	start, end := Resolve(RangeLastMonth, jan)
	assert.Equal(t, day(2025, 12, 1), start)
	assert.Equal(t, day(2026, 1, 1), end)
}
