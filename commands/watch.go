package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/data/aggregator"
	"github.com/mhowell/go-timetrack/internal/data/store"
	"github.com/mhowell/go-timetrack/internal/presentation/formatter"
	"github.com/mhowell/go-timetrack/internal/util"
)

var (
	watchRange string
	watchLimit int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live totals and timeline, re-rendered on store changes",
	Long: `watch re-renders the range totals and the timeline whenever the
session store changes.

Typing a column name (date, type, sphere, project, start, duration,
comment) re-sorts the timeline; typing the current column again flips
the direction.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchRange, "range", "r", timerange.RangeToday,
		"Date range name")
	watchCmd.Flags().IntVar(&watchLimit, "limit", 10,
		"Maximum timeline rows to display")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sorter := timeline.NewSorter()
	table := formatter.NewTableFormatter()

	render := func() {
		sessions, err := st.LoadSessions()
		if err != nil {
			util.LogError("Reload failed: " + err.Error())
			return
		}
		totals := aggregator.CalculateTotals(sessions, watchRange, sphereFilter, projectFilter, time.Now())
		fmt.Printf("[%s] %s  active %s  break %s\n",
			time.Now().Format("15:04:05"), watchRange,
			util.FormatSeconds(totals.ActiveSeconds), util.FormatSeconds(totals.BreakSeconds))

		rows := timeline.Build(sessions, watchRange, sphereFilter, projectFilter,
			sorter.Column(), sorter.Descending(), watchLimit, time.Now())
		if err := table.Format(os.Stdout, rows); err != nil {
			util.LogError("Render failed: " + err.Error())
		}
	}

	render()

	watcher, err := store.NewWatcher(st.DataPath(), st.SettingsPath())
	if err != nil {
		return fmt.Errorf("start store watcher: %w", err)
	}
	defer watcher.Close()

	input := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			input <- scanner.Text()
		}
		close(input)
	}()

	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("Store change: %s (%s)", event.Path, event.Operation)
			render()

		case line, ok := <-input:
			if !ok {
				return nil
			}
			column, valid := timeline.ParseColumn(line)
			if !valid {
				fmt.Printf("unknown column %q (columns: %s)\n",
					strings.TrimSpace(line), strings.Join(timeline.Columns, ", "))
				continue
			}
			sorter.Toggle(column)
			render()
		}
	}
}
