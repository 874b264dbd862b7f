package export

import (
	"sort"
	"time"

	"github.com/mhowell/go-timetrack/internal/core/filter"
	"github.com/mhowell/go-timetrack/internal/core/model"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/util"
)

// Row is one flat full-data export record. One period expands to one
// row; the flat schema carries a single secondary column set, so when a
// split has several secondaries only the last one's scalar fields
// survive. Widening that would need a repeated-group encoding in the
// export format, not a change here.
type Row struct {
	SessionID           string
	Date                string
	Sphere              string
	SessionStartTime    string
	SessionEndTime      string
	SessionTotal        int
	SessionActive       int
	SessionBreak        int
	Type                string
	Project             string
	SecondaryProject    string
	SecondaryComment    string
	SecondaryPercentage string
	ActivityStart       string
	ActivityEnd         string
	ActivityDuration    int
	ActivityComment     string
	BreakAction         string
	SecondaryAction     string
	ActiveNotes         string
	BreakNotes          string
	IdleNotes           string
	SessionNotes        string

	// Percentage/duration split columns. Single-form periods carry
	// "100" and the full period duration; summary rows leave all
	// four empty.
	PrimaryPercentage string
	PrimaryDuration   string
	SecondaryDuration string
}

// ExpandSession expands every period of a session into rows. Active
// periods additionally pass through the project filter; breaks and
// idles are sphere-scoped only, as in the timeline. A session with no
// periods at all still yields one summary row so it is not invisible
// in exports.
func ExpandSession(id string, s *model.Session, projectFilter string) []Row {
	base := Row{
		SessionID:        id,
		Date:             s.Day(),
		Sphere:           s.Sphere,
		SessionStartTime: s.StartClock(),
		SessionEndTime:   s.EndClock(),
		SessionTotal:     s.TotalDuration,
		SessionActive:    s.ActiveDuration,
		SessionBreak:     s.BreakDuration,
		ActiveNotes:      s.Comments.ActiveNotes,
		BreakNotes:       s.Comments.BreakNotes,
		IdleNotes:        s.Comments.IdleNotes,
		SessionNotes:     s.Comments.SessionNotes,
	}

	var rows []Row
	for i := range s.Active {
		if !filter.MatchesActive(&s.Active[i], projectFilter) {
			continue
		}
		rows = append(rows, expandActive(base, &s.Active[i]))
	}
	for i := range s.Breaks {
		rows = append(rows, expandBreak(base, &s.Breaks[i]))
	}
	for i := range s.IdlePeriods {
		rows = append(rows, expandIdle(base, &s.IdlePeriods[i]))
	}

	// Only a session with no periods at all gets the summary row; one
	// whose active periods were all filtered out stays absent.
	if len(rows) == 0 && len(s.Active) == 0 {
		rows = append(rows, base)
	}
	return rows
}

// expandActive fills the project columns from a single- or
// multi-project active period.
func expandActive(row Row, p *model.ActivePeriod) Row {
	row.Type = "Active"
	row.ActivityStart = p.Start
	row.ActivityEnd = p.EndClock()
	row.ActivityDuration = p.Duration
	row.ActivityComment = p.Comment

	if !p.IsSplit() {
		row.Project = p.Project
		row.PrimaryPercentage = "100"
		row.PrimaryDuration = util.FormatInt(p.Duration)
		return row
	}

	primary, _ := p.PrimarySplit()
	row.Project = primary.Name
	row.ActivityComment = primary.Comment
	row.PrimaryPercentage = util.FormatPercentage(primary.Percentage)
	row.PrimaryDuration = util.FormatInt(primary.Duration)
	for _, e := range p.SecondarySplits() {
		row.SecondaryProject = e.Name
		row.SecondaryComment = e.Comment
		row.SecondaryPercentage = util.FormatPercentage(e.Percentage)
		row.SecondaryDuration = util.FormatInt(e.Duration)
	}
	return row
}

// expandBreak mirrors expandActive for break actions.
func expandBreak(row Row, b *model.BreakPeriod) Row {
	row.Type = "Break"
	row.ActivityStart = b.Start
	row.ActivityEnd = b.EndClock()
	row.ActivityDuration = b.Duration
	row.ActivityComment = b.Comment

	if !b.IsSplit() {
		row.BreakAction = b.Action
		row.PrimaryPercentage = "100"
		row.PrimaryDuration = util.FormatInt(b.Duration)
		return row
	}

	primary, _ := b.PrimarySplit()
	row.BreakAction = primary.Name
	row.ActivityComment = primary.Comment
	row.PrimaryPercentage = util.FormatPercentage(primary.Percentage)
	row.PrimaryDuration = util.FormatInt(primary.Duration)
	for _, e := range b.SecondarySplits() {
		row.SecondaryAction = e.Name
		row.SecondaryComment = e.Comment
		row.SecondaryPercentage = util.FormatPercentage(e.Percentage)
		row.SecondaryDuration = util.FormatInt(e.Duration)
	}
	return row
}

// expandIdle emits the single summary row an idle period gets: no
// project or action columns, no percentage metadata.
func expandIdle(row Row, ip *model.IdlePeriod) Row {
	row.Type = "Idle"
	row.ActivityStart = ip.Start
	row.ActivityEnd = ip.End
	row.ActivityDuration = ip.Duration
	return row
}

// ExpandRange expands every session matching the range, sphere, and
// project filters, ordered by (date, session start) so exports are
// stable.
func ExpandRange(sessions map[string]model.Session, rangeName, sphereFilter, projectFilter string, now time.Time) []Row {
	start, end := timerange.Resolve(rangeName, now)

	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := sessions[ids[i]], sessions[ids[j]]
		if a.Day() != b.Day() {
			return a.Day() < b.Day()
		}
		return a.StartTimestamp < b.StartTimestamp
	})

	var rows []Row
	for _, id := range ids {
		s := sessions[id]
		if !filter.MatchesSession(&s, sphereFilter, start, end) {
			continue
		}
		rows = append(rows, ExpandSession(id, &s, projectFilter)...)
	}
	return rows
}
