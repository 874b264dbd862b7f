package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/data/aggregator"
	"github.com/mhowell/go-timetrack/internal/presentation/formatter"
)

// runSummary renders the dashboard summary cards configured in
// analysis_settings.card_ranges.
func runSummary(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	sessions, err := st.LoadSessions()
	if err != nil {
		return err
	}
	cfg, err := st.LoadSettings()
	if err != nil {
		return err
	}

	cards := aggregator.Cards(sessions, cfg.AnalysisSettings, sphereFilter, projectFilter, time.Now())
	return formatter.NewSummaryFormatter().Format(os.Stdout, cards, sphereFilter, projectFilter)
}
