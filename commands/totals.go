package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/data/aggregator"
	"github.com/mhowell/go-timetrack/internal/util"
)

var totalsRange string

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Sum active and break time for a date range",
	RunE:  runTotals,
}

func init() {
	totalsCmd.Flags().StringVarP(&totalsRange, "range", "r", timerange.RangeToday,
		`Date range name (e.g. "Today", "Last 7 Days", "Custom: 2026-01-22")`)
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sessions, err := st.LoadSessions()
	if err != nil {
		return err
	}

	totals := aggregator.CalculateTotals(sessions, totalsRange, sphereFilter, projectFilter, time.Now())
	fmt.Printf("Range:  %s\n", totalsRange)
	fmt.Printf("Active: %s\n", util.FormatSeconds(totals.ActiveSeconds))
	fmt.Printf("Break:  %s\n", util.FormatSeconds(totals.BreakSeconds))
	return nil
}
