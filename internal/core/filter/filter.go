package filter

import (
	"time"

	"github.com/mhowell/go-timetrack/internal/core/model"
)

// Wildcard filter values.
const (
	AllSpheres  = "All Spheres"
	AllProjects = "All Projects"
)

// MatchesSession reports whether a session passes the sphere filter and
// falls inside the half-open interval [start, end). Sessions with
// absent or malformed dates carry the sentinel date and therefore only
// match intervals reaching back to 2000.
func MatchesSession(s *model.Session, sphereFilter string, start, end time.Time) bool {
	if sphereFilter != AllSpheres && s.Sphere != sphereFilter {
		return false
	}
	day, err := time.ParseInLocation("2006-01-02", s.Day(), start.Location())
	if err != nil {
		// Day() already substitutes the sentinel, so this cannot
		// happen for store-loaded data.
		return false
	}
	return !day.Before(start) && day.Before(end)
}

// ActiveLabel resolves the project filter against an active period and
// returns the effective project label for downstream views. For split
// periods the matched entry's own name is the label, not the primary's.
func ActiveLabel(p *model.ActivePeriod, projectFilter string) (string, bool) {
	if projectFilter == AllProjects {
		return p.Label(), true
	}
	if p.IsSplit() {
		for _, e := range p.Projects {
			if e.Name == projectFilter {
				return e.Name, true
			}
		}
		return "", false
	}
	if p.Project == projectFilter {
		return p.Project, true
	}
	return "", false
}

// MatchesActive reports whether an active period passes the project filter.
func MatchesActive(p *model.ActivePeriod, projectFilter string) bool {
	_, ok := ActiveLabel(p, projectFilter)
	return ok
}
