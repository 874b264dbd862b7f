package timerange

import (
	"strings"
	"time"

	"github.com/mhowell/go-timetrack/internal/util"
)

// Named ranges understood by Resolve.
const (
	RangeToday      = "Today"
	RangeYesterday  = "Yesterday"
	RangeLast7Days  = "Last 7 Days"
	RangeLast14Days = "Last 14 Days"
	RangeLast30Days = "Last 30 Days"
	RangeThisWeek   = "This Week"
	RangeLastWeek   = "Last Week"
	RangeThisMonth  = "This Month"
	RangeLastMonth  = "Last Month"
	RangeAllTime    = "All Time"

	// CustomPrefix introduces a single-day custom range, e.g.
	// "Custom: 2026-01-22".
	CustomPrefix = "Custom: "
)

// Names lists the selectable named ranges in display order.
var Names = []string{
	RangeToday, RangeYesterday,
	RangeLast7Days, RangeLast14Days, RangeLast30Days,
	RangeThisWeek, RangeLastWeek,
	RangeThisMonth, RangeLastMonth,
	RangeAllTime,
}

// Resolve maps a range name to the half-open interval [start, end) it
// covers, at day granularity relative to now. Unrecognized names and
// unparsable Custom payloads fall back to Today rather than failing:
// a bad selection must never break a view refresh.
func Resolve(name string, now time.Time) (time.Time, time.Time) {
	today := midnight(now)

	switch name {
	case RangeToday:
		return today, today.AddDate(0, 0, 1)
	case RangeYesterday:
		return today.AddDate(0, 0, -1), today
	case RangeLast7Days:
		return today.AddDate(0, 0, -6), today.AddDate(0, 0, 1)
	case RangeLast14Days:
		return today.AddDate(0, 0, -13), today.AddDate(0, 0, 1)
	case RangeLast30Days:
		return today.AddDate(0, 0, -29), today.AddDate(0, 0, 1)
	case RangeThisWeek:
		start := today.AddDate(0, 0, -mondayOffset(today))
		return start, start.AddDate(0, 0, 7)
	case RangeLastWeek:
		start := today.AddDate(0, 0, -(mondayOffset(today) + 7))
		return start, start.AddDate(0, 0, 7)
	case RangeThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0)
	case RangeLastMonth:
		end := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return end.AddDate(0, -1, 0), end
	case RangeAllTime:
		return time.Date(2000, 1, 1, 0, 0, 0, 0, today.Location()),
			time.Date(2100, 1, 1, 0, 0, 0, 0, today.Location())
	}

	if strings.HasPrefix(name, CustomPrefix) {
		payload := strings.TrimSpace(strings.TrimPrefix(name, CustomPrefix))
		day, err := time.ParseInLocation("2006-01-02", payload, today.Location())
		if err == nil {
			return day, day.AddDate(0, 0, 1)
		}
		util.LogDebugf("Unparsable custom range %q, falling back to Today", payload)
	} else if name != "" {
		util.LogDebugf("Unknown range %q, falling back to Today", name)
	}

	return today, today.AddDate(0, 0, 1)
}

// midnight truncates a time to the start of its day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOffset returns the number of days since the most recent Monday
// (Monday = 0 .. Sunday = 6).
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
