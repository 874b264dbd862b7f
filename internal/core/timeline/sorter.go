package timeline

import (
	"sort"
	"strings"
)

// Sortable column names. ColumnProject covers both the project of
// active rows and the action of break rows, since Name carries whichever
// the row has.
const (
	ColumnDate     = "date"
	ColumnType     = "type"
	ColumnSphere   = "sphere"
	ColumnProject  = "project"
	ColumnStart    = "start"
	ColumnDuration = "duration"
	ColumnComment  = "comment"
)

// Columns lists the sortable column names in display order.
var Columns = []string{
	ColumnDate, ColumnType, ColumnSphere, ColumnProject,
	ColumnStart, ColumnDuration, ColumnComment,
}

// ParseColumn normalizes user input to a column name. "action" is
// accepted as an alias for the project column, which carries both.
func ParseColumn(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "action" {
		return ColumnProject, true
	}
	for _, column := range Columns {
		if input == column {
			return column, true
		}
	}
	return "", false
}

// SortRows sorts rows in place by the given column. The date column
// orders by the (date, start) tuple; ISO dates and HH:MM:SS clocks are
// both sortable as plain strings. The sort is stable so repeated
// re-sorts keep equal rows in a fixed order.
func SortRows(rows []Row, column string, descending bool) {
	less := func(i, j int) bool {
		switch column {
		case ColumnType:
			return rows[i].Type < rows[j].Type
		case ColumnSphere:
			return rows[i].Sphere < rows[j].Sphere
		case ColumnProject:
			return rows[i].Name < rows[j].Name
		case ColumnStart:
			return rows[i].Start < rows[j].Start
		case ColumnDuration:
			return rows[i].Duration < rows[j].Duration
		case ColumnComment:
			return rows[i].Comment < rows[j].Comment
		default: // ColumnDate
			if rows[i].Date != rows[j].Date {
				return rows[i].Date < rows[j].Date
			}
			return rows[i].Start < rows[j].Start
		}
	}

	if descending {
		sort.SliceStable(rows, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(rows, less)
}

// Sorter tracks the interactive sort state of the timeline view.
// Toggling the current column flips its direction; selecting another
// column resets to ascending.
type Sorter struct {
	column     string
	descending bool
}

// NewSorter starts on the date column, ascending.
func NewSorter() *Sorter {
	return &Sorter{column: ColumnDate}
}

// Column returns the active sort column.
func (s *Sorter) Column() string {
	return s.column
}

// Descending reports the active sort direction.
func (s *Sorter) Descending() bool {
	return s.descending
}

// Toggle selects a column, flipping direction on a repeated selection.
func (s *Sorter) Toggle(column string) {
	if s.column == column {
		s.descending = !s.descending
		return
	}
	s.column = column
	s.descending = false
}

// Apply sorts rows according to the current state.
func (s *Sorter) Apply(rows []Row) {
	SortRows(rows, s.column, s.descending)
}
