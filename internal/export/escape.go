package export

import (
	"strings"
)

// EscapeCell neutralizes a free-text value bound for a spreadsheet
// upload: a leading formula trigger character gets a quote prefix so
// the cell stays text, and angle brackets are entity-escaped. CSV
// output does not need this; encoding/csv quoting is enough there.
func EscapeCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '|':
		value = "'" + value
	}
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}
