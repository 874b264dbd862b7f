package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mhowell/go-timetrack/internal/core/model"
)

// Generator produces deterministic dummy sessions for tests and demos.
// The same seed always yields the same store contents.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	spheres  = []string{"Work", "Personal"}
	projects = map[string][]string{
		"Work":     {"General", "Platform", "Reporting"},
		"Personal": {"Reading", "Exercise"},
	}
	actions = []string{"Coffee", "Walk", "Lunch"}
)

// SessionID builds the store key for a session: date plus start epoch.
func SessionID(date string, start int64) string {
	return fmt.Sprintf("%s_%d", date, start)
}

// GenerateStore produces days of sessions ending at the day before now,
// one or two sessions per day.
func (g *Generator) GenerateStore(days int, now time.Time) map[string]model.Session {
	sessions := make(map[string]model.Session)
	for d := days; d >= 1; d-- {
		day := now.AddDate(0, 0, -d)
		count := 1 + g.rng.Intn(2)
		for n := 0; n < count; n++ {
			s := g.GenerateSession(day, 9+n*5)
			sessions[SessionID(s.Date, s.StartTimestamp)] = s
		}
	}
	return sessions
}

// GenerateSession produces one session on the given day starting at the
// given hour, with a mix of single and split periods.
func (g *Generator) GenerateSession(day time.Time, hour int) model.Session {
	sphere := spheres[g.rng.Intn(len(spheres))]
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())

	var active []model.ActivePeriod
	var breaks []model.BreakPeriod
	var idles []model.IdlePeriod
	cursor := start
	activeTotal, breakTotal := 0, 0

	periods := 2 + g.rng.Intn(3)
	for i := 0; i < periods; i++ {
		duration := (20 + g.rng.Intn(60)) * 60
		active = append(active, g.activePeriod(sphere, cursor, duration))
		activeTotal += duration
		cursor = cursor.Add(time.Duration(duration) * time.Second)

		if i < periods-1 {
			pause := (5 + g.rng.Intn(15)) * 60
			if g.rng.Intn(3) == 0 {
				end := cursor.Add(time.Duration(pause) * time.Second)
				endTS := end.Unix()
				idles = append(idles, model.IdlePeriod{
					Start:        cursor.Format("15:04:05"),
					End:          end.Format("15:04:05"),
					EndTimestamp: &endTS,
					Duration:     pause,
				})
			} else {
				breaks = append(breaks, g.breakPeriod(cursor, pause))
			}
			breakTotal += pause
			cursor = cursor.Add(time.Duration(pause) * time.Second)
		}
	}

	return model.Session{
		Sphere:         sphere,
		Date:           start.Format("2006-01-02"),
		StartTimestamp: start.Unix(),
		EndTimestamp:   cursor.Unix(),
		TotalDuration:  activeTotal + breakTotal,
		ActiveDuration: activeTotal,
		BreakDuration:  breakTotal,
		Active:         active,
		Breaks:         breaks,
		IdlePeriods:    idles,
		Comments: model.SessionComments{
			SessionNotes: "generated session",
		},
	}
}

func (g *Generator) activePeriod(sphere string, start time.Time, duration int) model.ActivePeriod {
	names := projects[sphere]
	p := model.ActivePeriod{
		Start:          start.Format("15:04:05"),
		StartTimestamp: start.Unix(),
		Duration:       duration,
	}

	// Roughly one period in three is a two-project split.
	if len(names) >= 2 && g.rng.Intn(3) == 0 {
		primary := names[g.rng.Intn(len(names))]
		secondary := primary
		for secondary == primary {
			secondary = names[g.rng.Intn(len(names))]
		}
		pct := float64(50 + 10*g.rng.Intn(4))
		primaryDur := int(float64(duration) * pct / 100)
		p.Projects = []model.ProjectSplit{
			{Name: primary, Percentage: pct, Duration: primaryDur, Primary: true},
			{Name: secondary, Percentage: 100 - pct, Duration: duration - primaryDur},
		}
		return p
	}

	p.Project = names[g.rng.Intn(len(names))]
	return p
}

func (g *Generator) breakPeriod(start time.Time, duration int) model.BreakPeriod {
	b := model.BreakPeriod{
		Start:          start.Format("15:04:05"),
		StartTimestamp: start.Unix(),
		Duration:       duration,
	}

	if g.rng.Intn(4) == 0 {
		primary := actions[g.rng.Intn(len(actions))]
		secondary := primary
		for secondary == primary {
			secondary = actions[g.rng.Intn(len(actions))]
		}
		primaryDur := duration * 7 / 10
		b.Actions = []model.ActionSplit{
			{Name: primary, Percentage: 70, Duration: primaryDur, Primary: true},
			{Name: secondary, Percentage: 30, Duration: duration - primaryDur},
		}
		return b
	}

	b.Action = actions[g.rng.Intn(len(actions))]
	return b
}
