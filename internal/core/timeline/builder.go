package timeline

import (
	"sort"
	"time"

	"github.com/mhowell/go-timetrack/internal/core/filter"
	"github.com/mhowell/go-timetrack/internal/core/model"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
)

// Row type labels.
const (
	TypeActive = "Active"
	TypeBreak  = "Break"
	TypeIdle   = "Idle"
)

// DefaultLimit caps the number of rows a view displays.
const DefaultLimit = 100

// Row is one period flattened for the unified timeline view. Name holds
// the project for active rows and the action for break rows.
type Row struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Sphere   string `json:"sphere"`
	Name     string `json:"name"`
	Start    string `json:"start"`
	Duration int    `json:"duration"`
	Comment  string `json:"comment,omitempty"`
}

// Build flattens every period passing the filters into rows, sorts them
// by the requested column, and truncates to limit. Truncation happens
// after sorting so the result is always the top N of the full set. A
// non-positive limit falls back to DefaultLimit.
func Build(sessions map[string]model.Session, rangeName, sphereFilter, projectFilter, sortColumn string, descending bool, limit int, now time.Time) []Row {
	start, end := timerange.Resolve(rangeName, now)
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Walk sessions in key order so equal-key rows come out in a
	// stable order run to run.
	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rows []Row
	for _, id := range ids {
		s := sessions[id]
		if !filter.MatchesSession(&s, sphereFilter, start, end) {
			continue
		}
		day := s.Day()

		for i := range s.Active {
			p := &s.Active[i]
			label, ok := filter.ActiveLabel(p, projectFilter)
			if !ok {
				continue
			}
			rows = append(rows, Row{
				Date:     day,
				Type:     TypeActive,
				Sphere:   s.Sphere,
				Name:     label,
				Start:    p.Start,
				Duration: p.Duration,
				Comment:  p.Comment,
			})
		}
		// Breaks and idles are sphere-scoped; the project filter
		// does not apply to them.
		for i := range s.Breaks {
			b := &s.Breaks[i]
			rows = append(rows, Row{
				Date:     day,
				Type:     TypeBreak,
				Sphere:   s.Sphere,
				Name:     b.Label(),
				Start:    b.Start,
				Duration: b.Duration,
				Comment:  b.Comment,
			})
		}
		for i := range s.IdlePeriods {
			ip := &s.IdlePeriods[i]
			rows = append(rows, Row{
				Date:     day,
				Type:     TypeIdle,
				Sphere:   s.Sphere,
				Start:    ip.Start,
				Duration: ip.Duration,
			})
		}
	}

	SortRows(rows, sortColumn, descending)

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
