package formatter

import (
	"fmt"
	"io"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
)

// Formatter renders timeline rows to a writer.
type Formatter interface {
	Format(w io.Writer, rows []timeline.Row) error
}

// New returns the formatter for the named output format.
func New(format string) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, csv, json, yaml)", format)
	}
}
