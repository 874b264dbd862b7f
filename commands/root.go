package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/filter"
	"github.com/mhowell/go-timetrack/internal/core/settings"
	"github.com/mhowell/go-timetrack/internal/data/store"
	"github.com/mhowell/go-timetrack/internal/util"
)

var (
	// Logging related
	debug bool

	// Store paths
	dataFile     string
	settingsFile string

	// Filtering
	sphereFilter  string
	projectFilter string

	rootCmd = &cobra.Command{
		Use:   "go-timetrack [flags]",
		Short: "Personal time-tracking analysis tool",
		Long: `go-timetrack analyzes a local store of recorded work sessions:
date-range totals, a sortable unified timeline, and flat CSV/spreadsheet exports.

Examples:
  go-timetrack                                  # Summary cards with default settings
  go-timetrack totals --range "Last 7 Days"     # Active/break totals for a range
  go-timetrack timeline --sort-by duration      # Timeline sorted by duration
  go-timetrack timeline --range "Custom: 2026-01-22" -o csv
  go-timetrack export --range "This Month" > month.csv
  go-timetrack sphere add Freelance             # Manage spheres/projects/actions`,
		RunE: runSummary,
	}
)

const (
	defaultLogFile      = "~/.go-timetrack/logs/app.log"
	defaultDataFile     = "~/.go-timetrack/data.json"
	defaultSettingsFile = "~/.go-timetrack/settings.json"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", defaultDataFile,
		"Session store path (data.json)")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", defaultSettingsFile,
		"Settings store path (settings.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.PersistentFlags().StringVarP(&sphereFilter, "sphere", "s", filter.AllSpheres,
		"Sphere filter")
	rootCmd.PersistentFlags().StringVarP(&projectFilter, "project", "p", filter.AllProjects,
		"Project filter")
}

// openStore initializes logging and returns the store over the
// configured paths. A missing store directory that cannot be created
// fails here, before any load or save gets a chance to.
func openStore() (*store.Store, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		// Logging still works without the file output.
		logFile = ""
	}
	util.InitLogger(logLevel, logFile, debug)

	dataFile = expandPath(dataFile)
	settingsFile = expandPath(settingsFile)
	for _, dir := range []string{filepath.Dir(dataFile), filepath.Dir(settingsFile)} {
		if err := ensureDir(dir); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	return store.New(dataFile, settingsFile), nil
}

// openService loads settings into a Service backed by the store.
func openService() (*settings.Service, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	cfg, err := st.LoadSettings()
	if err != nil {
		return nil, err
	}
	return settings.NewService(cfg, st), nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
