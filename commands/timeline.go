package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/presentation/formatter"
)

var (
	timelineRange  string
	timelineSortBy string
	timelineDesc   bool
	timelineLimit  int
	timelineOutput string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the unified timeline of active, break, and idle periods",
	RunE:  runTimeline,
}

func init() {
	timelineCmd.Flags().StringVarP(&timelineRange, "range", "r", timerange.RangeToday,
		`Date range name (e.g. "Today", "Last 7 Days", "Custom: 2026-01-22")`)
	timelineCmd.Flags().StringVar(&timelineSortBy, "sort-by", timeline.ColumnDate,
		"Sort column (date, type, sphere, project, start, duration, comment)")
	timelineCmd.Flags().BoolVar(&timelineDesc, "desc", false,
		"Sort descending")
	timelineCmd.Flags().IntVar(&timelineLimit, "limit", timeline.DefaultLimit,
		"Maximum rows to display")
	timelineCmd.Flags().StringVarP(&timelineOutput, "output", "o", "table",
		"Output format (table, csv, json, yaml)")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sessions, err := st.LoadSessions()
	if err != nil {
		return err
	}

	rows := timeline.Build(sessions, timelineRange, sphereFilter, projectFilter,
		timelineSortBy, timelineDesc, timelineLimit, time.Now())

	f, err := formatter.New(timelineOutput)
	if err != nil {
		return err
	}
	return f.Format(os.Stdout, rows)
}
