package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhowell/go-timetrack/internal/data/aggregator"
	"github.com/mhowell/go-timetrack/internal/util"
)

// SummaryFormatter renders the totals report for a set of dashboard
// cards.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the summary report. sphere and project name the active
// filters so the report is self-describing.
func (f *SummaryFormatter) Format(w io.Writer, cards []aggregator.CardTotals, sphere, project string) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Time Tracking Summary")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sphere: %s\n", sphere)
	fmt.Fprintf(w, "Project: %s\n", project)
	fmt.Fprintln(w)

	if len(cards) == 0 {
		fmt.Fprintln(w, "No ranges configured")
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		return nil
	}

	for _, card := range cards {
		fmt.Fprintf(w, "%s:\n", card.RangeName)
		fmt.Fprintf(w, "  Active: %s\n", util.FormatSeconds(card.ActiveSeconds))
		fmt.Fprintf(w, "  Break:  %s\n", util.FormatSeconds(card.BreakSeconds))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
