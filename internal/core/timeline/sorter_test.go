package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsortedRows() []Row {
	return []Row{
		{Date: "2026-01-22", Type: TypeBreak, Sphere: "Work", Name: "Coffee", Start: "09:40:00", Duration: 600},
		{Date: "2026-01-21", Type: TypeActive, Sphere: "Personal", Name: "Reading", Start: "19:00:00", Duration: 900},
		{Date: "2026-01-22", Type: TypeActive, Sphere: "Work", Name: "Platform", Start: "09:00:00", Duration: 3600},
		{Date: "2026-01-22", Type: TypeIdle, Sphere: "Work", Start: "12:00:00", Duration: 300},
	}
}

func TestSortRowsByDateUsesStartTiebreak(t *testing.T) {
	rows := unsortedRows()
	SortRows(rows, ColumnDate, false)

	require.Len(t, rows, 4)
	assert.Equal(t, "2026-01-21", rows[0].Date)
	assert.Equal(t, "09:00:00", rows[1].Start)
	assert.Equal(t, "09:40:00", rows[2].Start)
	assert.Equal(t, "12:00:00", rows[3].Start)
}

func TestSortRowsByDuration(t *testing.T) {
	rows := unsortedRows()
	SortRows(rows, ColumnDuration, false)

	durations := make([]int, len(rows))
	for i, r := range rows {
		durations[i] = r.Duration
	}
	assert.Equal(t, []int{300, 600, 900, 3600}, durations)
}

func TestSortRowsDescendingReversesAscending(t *testing.T) {
	// All durations distinct, so descending must be the exact reverse.
	asc := unsortedRows()
	SortRows(asc, ColumnDuration, false)

	desc := unsortedRows()
	SortRows(desc, ColumnDuration, true)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortRowsByName(t *testing.T) {
	rows := unsortedRows()
	SortRows(rows, ColumnProject, false)

	// The idle row has an empty name and sorts first.
	assert.Empty(t, rows[0].Name)
	assert.Equal(t, "Coffee", rows[1].Name)
	assert.Equal(t, "Platform", rows[2].Name)
	assert.Equal(t, "Reading", rows[3].Name)
}

func TestSortRowsStableOnTies(t *testing.T) {
	rows := []Row{
		{Date: "2026-01-22", Name: "A", Duration: 100},
		{Date: "2026-01-22", Name: "B", Duration: 100},
		{Date: "2026-01-22", Name: "C", Duration: 100},
	}

	SortRows(rows, ColumnDuration, false)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "B", rows[1].Name)
	assert.Equal(t, "C", rows[2].Name)

	SortRows(rows, ColumnDuration, true)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "B", rows[1].Name)
	assert.Equal(t, "C", rows[2].Name)
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"exact", "duration", ColumnDuration, true},
		{"uppercase", "DATE", ColumnDate, true},
		{"whitespace", "  start ", ColumnStart, true},
		{"action alias", "action", ColumnProject, true},
		{"unknown", "velocity", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColumn(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSorterToggle(t *testing.T) {
	s := NewSorter()
	assert.Equal(t, ColumnDate, s.Column())
	assert.False(t, s.Descending())

	// Selecting the current column flips direction.
	s.Toggle(ColumnDate)
	assert.Equal(t, ColumnDate, s.Column())
	assert.True(t, s.Descending())

	s.Toggle(ColumnDate)
	assert.False(t, s.Descending())

	// Selecting a new column resets to ascending.
	s.Toggle(ColumnDate)
	require.True(t, s.Descending())
	s.Toggle(ColumnDuration)
	assert.Equal(t, ColumnDuration, s.Column())
	assert.False(t, s.Descending())
}

func TestSorterApply(t *testing.T) {
	s := NewSorter()
	s.Toggle(ColumnDuration)
	s.Toggle(ColumnDuration)

	rows := unsortedRows()
	s.Apply(rows)
	assert.Equal(t, 3600, rows[0].Duration)
	assert.Equal(t, 300, rows[len(rows)-1].Duration)
}
