package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhowell/go-timetrack/internal/core/model"
)

var now = time.Date(2026, 1, 22, 15, 0, 0, 0, time.UTC)

func TestGenerateStoreDeterministic(t *testing.T) {
	a := NewGenerator(42).GenerateStore(14, now)
	b := NewGenerator(42).GenerateStore(14, now)
	assert.Equal(t, a, b)

	c := NewGenerator(7).GenerateStore(14, now)
	assert.NotEqual(t, a, c)
}

func TestGenerateStoreShape(t *testing.T) {
	sessions := NewGenerator(42).GenerateStore(14, now)
	require.NotEmpty(t, sessions)
	// One or two sessions per generated day.
	assert.GreaterOrEqual(t, len(sessions), 14)
	assert.LessOrEqual(t, len(sessions), 28)

	for id, s := range sessions {
		assert.Equal(t, SessionID(s.Date, s.StartTimestamp), id)
		assert.Contains(t, []string{"Work", "Personal"}, s.Sphere)
		assert.NotEmpty(t, s.Active)

		_, err := time.Parse("2006-01-02", s.Date)
		assert.NoError(t, err)
	}
}

func TestGeneratedSessionInvariants(t *testing.T) {
	g := NewGenerator(42)

	for i := 0; i < 50; i++ {
		s := g.GenerateSession(now.AddDate(0, 0, -1), 9)

		activeTotal := 0
		for _, p := range s.Active {
			activeTotal += p.Duration
			assertPeriodShape(t, &p)
		}
		assert.Equal(t, s.ActiveDuration, activeTotal)

		pauseTotal := 0
		for _, b := range s.Breaks {
			pauseTotal += b.Duration
		}
		for _, ip := range s.IdlePeriods {
			assert.True(t, ip.Closed())
			pauseTotal += ip.Duration
		}
		assert.Equal(t, s.BreakDuration, pauseTotal)
		assert.Equal(t, s.TotalDuration, s.ActiveDuration+s.BreakDuration)
	}
}

func assertPeriodShape(t *testing.T, p *model.ActivePeriod) {
	t.Helper()

	if !p.IsSplit() {
		assert.NotEmpty(t, p.Project)
		return
	}

	// Split periods use the tagged form exclusively.
	assert.Empty(t, p.Project)

	var pctSum float64
	var durSum int
	primaries := 0
	for _, e := range p.Projects {
		pctSum += e.Percentage
		durSum += e.Duration
		if e.Primary {
			primaries++
		}
	}
	assert.Equal(t, 100.0, pctSum)
	assert.Equal(t, p.Duration, durSum)
	assert.Equal(t, 1, primaries)
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "2026-01-22_1769072400", SessionID("2026-01-22", 1769072400))
}
