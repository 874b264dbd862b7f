package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
	"github.com/mhowell/go-timetrack/internal/data/aggregator"
)

func sampleRows() []timeline.Row {
	return []timeline.Row{
		{Date: "2026-01-22", Type: timeline.TypeActive, Sphere: "Work", Name: "Platform", Start: "09:00:00", Duration: 3600, Comment: "deep work"},
		{Date: "2026-01-22", Type: timeline.TypeBreak, Sphere: "Work", Name: "Coffee", Start: "10:00:00", Duration: 600},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    Formatter
		wantErr bool
	}{
		{format: "table", want: &TableFormatter{}},
		{format: "csv", want: &CSVFormatter{}},
		{format: "json", want: &JSONFormatter{}},
		{format: "yaml", want: &YAMLFormatter{}},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := New(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().Format(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, TimelineHeader, records[0])
	assert.Equal(t, []string{"2026-01-22", "Active", "Work", "Platform", "09:00:00", "3600", "1h 0m", "deep work"}, records[1])
	assert.Equal(t, "10m 0s", records[2][6])
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, sampleRows()))

	var got []timeline.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows(), got)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(&buf, sampleRows()))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Platform", got[0]["name"])
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().Format(&buf, sampleRows()))

	out := buf.String()
	assert.Contains(t, out, "Project/Action")
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
	// Total row sums both durations.
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "1h 10m")
}

func TestTableFormatterClampsLongComments(t *testing.T) {
	rows := []timeline.Row{
		{Date: "2026-01-22", Type: timeline.TypeActive, Sphere: "Work", Name: "P", Start: "09:00:00", Duration: 60,
			Comment: strings.Repeat("x", 200)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().Format(&buf, rows))
	assert.NotContains(t, buf.String(), strings.Repeat("x", 100))
	assert.Contains(t, buf.String(), "…")
}

func TestSummaryFormatter(t *testing.T) {
	cards := []aggregator.CardTotals{
		{RangeName: "Today", Totals: aggregator.Totals{ActiveSeconds: 4000, BreakSeconds: 1000}},
		{RangeName: "All Time", Totals: aggregator.Totals{ActiveSeconds: 7200}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter().Format(&buf, cards, "Work", "All Projects"))

	out := buf.String()
	assert.Contains(t, out, "Sphere: Work")
	assert.Contains(t, out, "Project: All Projects")
	assert.Contains(t, out, "Today:")
	assert.Contains(t, out, "Active: 1h 6m")
	assert.Contains(t, out, "Break:  16m 40s")
	assert.Contains(t, out, "All Time:")
	assert.Contains(t, out, "Active: 2h 0m")
}

func TestSummaryFormatterNoCards(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter().Format(&buf, nil, "All Spheres", "All Projects"))
	assert.Contains(t, buf.String(), "No ranges configured")
}
