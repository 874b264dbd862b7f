package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/testing/fixtures"
)

var (
	generateDays  int
	generateSeed  int64
	generateForce bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fill the session store with generated dummy data",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateDays, "days", 14,
		"Number of past days to generate sessions for")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 1,
		"Random seed (same seed, same data)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false,
		"Overwrite an existing data file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if !generateForce {
		if _, err := os.Stat(st.DataPath()); err == nil {
			return fmt.Errorf("data file %s already exists, pass --force to overwrite", st.DataPath())
		}
	}

	sessions := fixtures.NewGenerator(generateSeed).GenerateStore(generateDays, time.Now())
	if err := st.SaveSessions(sessions); err != nil {
		return err
	}

	fmt.Printf("Wrote %d sessions to %s\n", len(sessions), st.DataPath())
	return nil
}
