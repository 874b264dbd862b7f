package export

import (
	"encoding/csv"
	"io"

	"github.com/mhowell/go-timetrack/internal/util"
)

// FullHeader is the stable column order of the full-data CSV export:
// the 23 historical columns plus the percentage/duration split columns.
// Consumers match on the exact header strings.
var FullHeader = []string{
	"session_id", "date", "sphere",
	"session_start_time", "session_end_time",
	"session_total_duration", "session_active_duration", "session_break_duration",
	"type", "project",
	"secondary_project", "secondary_comment", "secondary_percentage",
	"activity_start", "activity_end", "activity_duration", "activity_comment",
	"break_action", "secondary_action",
	"active_notes", "break_notes", "idle_notes", "session_notes",
	"Primary Percentage", "Primary Duration",
	"Secondary Percentage", "Secondary Duration",
}

// FullRecord flattens a row in FullHeader order.
func FullRecord(r Row) []string {
	return []string{
		r.SessionID,
		r.Date,
		r.Sphere,
		r.SessionStartTime,
		r.SessionEndTime,
		util.FormatInt(r.SessionTotal),
		util.FormatInt(r.SessionActive),
		util.FormatInt(r.SessionBreak),
		r.Type,
		r.Project,
		r.SecondaryProject,
		r.SecondaryComment,
		r.SecondaryPercentage,
		r.ActivityStart,
		r.ActivityEnd,
		util.FormatInt(r.ActivityDuration),
		r.ActivityComment,
		r.BreakAction,
		r.SecondaryAction,
		r.ActiveNotes,
		r.BreakNotes,
		r.IdleNotes,
		r.SessionNotes,
		r.PrimaryPercentage,
		r.PrimaryDuration,
		r.SecondaryPercentage,
		r.SecondaryDuration,
	}
}

// WriteCSV writes the full-data export, header first.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(FullHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(FullRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
