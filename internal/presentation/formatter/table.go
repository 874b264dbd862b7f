package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
	"github.com/mhowell/go-timetrack/internal/util"
)

// commentCap keeps a single long comment from blowing up the table when
// the terminal width cannot be determined.
const commentCap = 40

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Date", "Type", "Sphere", "Project/Action",
			"Start", "Duration", "Comment",
		},
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []timeline.Row) error {
	records := make([][]string, 0, len(rows))
	var totalSeconds int
	for _, row := range rows {
		records = append(records, []string{
			row.Date,
			row.Type,
			row.Sphere,
			row.Name,
			row.Start,
			util.FormatSeconds(row.Duration),
			clampCell(row.Comment, f.commentWidth()),
		})
		totalSeconds += row.Duration
	}

	widths := f.columnWidths(records)

	f.printBorder(w, widths, "top")
	f.printRow(w, f.headers, widths)
	f.printBorder(w, widths, "middle")
	for _, record := range records {
		f.printRow(w, record, widths)
	}
	f.printBorder(w, widths, "middle")
	f.printRow(w, []string{"Total", "", "", "", "", util.FormatSeconds(totalSeconds), ""}, widths)
	f.printBorder(w, widths, "bottom")

	return nil
}

// commentWidth derives the room left for the comment column from the
// terminal width, falling back to a fixed cap when not on a terminal.
func (f *TableFormatter) commentWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return commentCap
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return commentCap
	}
	// Leave room for the six other columns plus borders.
	width := cols - 70
	if width < 10 {
		return 10
	}
	return width
}

func clampCell(value string, max int) string {
	if runewidth.StringWidth(value) <= max {
		return value
	}
	return runewidth.Truncate(value, max, "…")
}

func (f *TableFormatter) columnWidths(records [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, record := range records {
		for i, value := range record {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(w, left)
	for i, width := range widths {
		fmt.Fprint(w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(w, middle)
		}
	}
	fmt.Fprintln(w, right)
}

func (f *TableFormatter) printRow(w io.Writer, values []string, widths []int) {
	fmt.Fprint(w, "│")
	for i, value := range values {
		pad := widths[i] - runewidth.StringWidth(value)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, " %s%s │", value, strings.Repeat(" ", pad))
	}
	fmt.Fprintln(w)
}
