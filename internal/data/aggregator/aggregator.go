package aggregator

import (
	"time"

	"github.com/mhowell/go-timetrack/internal/core/filter"
	"github.com/mhowell/go-timetrack/internal/core/model"
	"github.com/mhowell/go-timetrack/internal/core/settings"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/util"
)

// Totals holds summed durations for a resolved range, in integer
// seconds. Formatting is the presentation layer's concern.
type Totals struct {
	ActiveSeconds int `json:"active_seconds"`
	BreakSeconds  int `json:"break_seconds"`
}

// CardTotals is Totals for one dashboard card range.
type CardTotals struct {
	RangeName string `json:"range_name"`
	Totals
}

// CalculateTotals resolves the named range and sums durations over every
// session passing the sphere and date filters.
//
// Active periods are additionally project-filtered; for split periods
// the duration counted is the whole period's, matching how the timeline
// presents one row per period. Break periods are sphere-scoped, never
// project-scoped. Closed idle periods count as break time; open ones
// have no final duration yet and are skipped.
func CalculateTotals(sessions map[string]model.Session, rangeName, sphereFilter, projectFilter string, now time.Time) Totals {
	start, end := timerange.Resolve(rangeName, now)

	var totals Totals
	matched := 0
	for id := range sessions {
		s := sessions[id]
		if !filter.MatchesSession(&s, sphereFilter, start, end) {
			continue
		}
		matched++

		for i := range s.Active {
			if filter.MatchesActive(&s.Active[i], projectFilter) {
				totals.ActiveSeconds += s.Active[i].Duration
			}
		}
		for i := range s.Breaks {
			totals.BreakSeconds += s.Breaks[i].Duration
		}
		for i := range s.IdlePeriods {
			if s.IdlePeriods[i].Closed() {
				totals.BreakSeconds += s.IdlePeriods[i].Duration
			}
		}
	}

	util.LogDebugf("Totals for %q (sphere=%q, project=%q): %d sessions, active=%ds, break=%ds",
		rangeName, sphereFilter, projectFilter, matched, totals.ActiveSeconds, totals.BreakSeconds)
	return totals
}

// Cards computes one Totals per configured dashboard card range.
func Cards(sessions map[string]model.Session, cfg settings.AnalysisSettings, sphereFilter, projectFilter string, now time.Time) []CardTotals {
	cards := make([]CardTotals, 0, len(cfg.CardRanges))
	for _, rangeName := range cfg.CardRanges {
		cards = append(cards, CardTotals{
			RangeName: rangeName,
			Totals:    CalculateTotals(sessions, rangeName, sphereFilter, projectFilter, now),
		})
	}
	return cards
}
