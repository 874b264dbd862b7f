package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullHeaderShape(t *testing.T) {
	require.Len(t, FullHeader, 27)

	assert.Equal(t, "session_id", FullHeader[0])
	assert.Equal(t, "secondary_percentage", FullHeader[12])
	assert.Equal(t, "session_notes", FullHeader[22])

	// The split columns are appended after the historical 23.
	assert.Equal(t, []string{
		"Primary Percentage", "Primary Duration",
		"Secondary Percentage", "Secondary Duration",
	}, FullHeader[23:])
}

func TestFullRecordMatchesHeaderOrder(t *testing.T) {
	r := Row{
		SessionID:           "id",
		Date:                "2026-01-22",
		Type:                "Active",
		Project:             "Platform",
		SecondaryProject:    "Reporting",
		SecondaryPercentage: "40",
		ActivityDuration:    3600,
		PrimaryPercentage:   "60",
		PrimaryDuration:     "2160",
		SecondaryDuration:   "1440",
	}

	record := FullRecord(r)
	require.Len(t, record, len(FullHeader))

	assert.Equal(t, "id", record[0])
	assert.Equal(t, "Platform", record[9])
	assert.Equal(t, "40", record[12])
	assert.Equal(t, "3600", record[15])
	assert.Equal(t, "60", record[23])
	assert.Equal(t, "2160", record[24])
	// secondary_percentage repeats in the appended column block so the
	// split columns read as a self-contained group.
	assert.Equal(t, "40", record[25])
	assert.Equal(t, "1440", record[26])
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{SessionID: "a", Date: "2026-01-21", Type: "Active", Project: "P"},
		{SessionID: "b", Date: "2026-01-22", Type: "Break", BreakAction: "Coffee, long"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, FullHeader, records[0])
	assert.Equal(t, "a", records[1][0])
	// encoding/csv round-trips the embedded comma.
	assert.Equal(t, "Coffee, long", records[2][17])
}
