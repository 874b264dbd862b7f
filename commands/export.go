package commands

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/timerange"
	"github.com/mhowell/go-timetrack/internal/export"
	"github.com/mhowell/go-timetrack/internal/util"
)

var (
	exportRange  string
	exportFormat string
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions as flat rows",
	Long: `export expands every session in the range into flat rows.

Formats:
  full   Full-data CSV: the 23 session/period columns plus the
         Primary/Secondary Percentage and Duration columns.
  sheet  The 23-value spreadsheet upload rows, with formula-injection
         escaping applied to free-text cells, rendered as CSV.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportRange, "range", "r", timerange.RangeAllTime,
		`Date range name (e.g. "This Month", "Custom: 2026-01-22")`)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "full",
		"Export format (full, sheet)")
	exportCmd.Flags().StringVarP(&exportFile, "out", "o", "",
		"Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sessions, err := st.LoadSessions()
	if err != nil {
		return err
	}

	rows := export.ExpandRange(sessions, exportRange, sphereFilter, projectFilter, time.Now())

	out := os.Stdout
	if exportFile != "" {
		f, err := os.Create(exportFile)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "full":
		err = export.WriteCSV(out, rows)
	case "sheet":
		cw := csv.NewWriter(out)
		err = cw.WriteAll(export.SheetRows(rows))
	default:
		return fmt.Errorf("unsupported export format: %s (supported: full, sheet)", exportFormat)
	}
	if err != nil {
		return err
	}

	util.LogInfof("Exported %d rows (%s)", len(rows), exportFormat)
	return nil
}
