package export

import (
	"github.com/mhowell/go-timetrack/internal/util"
)

// SheetHeader is the 23-value header row of the spreadsheet upload
// format expected by the external Sheets transport.
var SheetHeader = []string{
	"Session ID", "Date", "Sphere",
	"Session Start Time", "Session End Time",
	"Session Total Duration", "Session Active Duration", "Session Break Duration",
	"Type", "Project",
	"Secondary Project", "Secondary Comment", "Secondary Percentage",
	"Activity Start", "Activity End", "Activity Duration", "Activity Comment",
	"Break Action", "Secondary Action",
	"Active Notes", "Break Notes", "Idle Notes", "Session Notes",
}

// SheetRow flattens an export row into the 23 ordered cell values of
// the upload format. Every free-text cell passes through EscapeCell;
// numeric and clock cells are produced locally and need no escaping.
func SheetRow(r Row) []string {
	return []string{
		r.SessionID,
		r.Date,
		EscapeCell(r.Sphere),
		r.SessionStartTime,
		r.SessionEndTime,
		util.FormatInt(r.SessionTotal),
		util.FormatInt(r.SessionActive),
		util.FormatInt(r.SessionBreak),
		r.Type,
		EscapeCell(r.Project),
		EscapeCell(r.SecondaryProject),
		EscapeCell(r.SecondaryComment),
		r.SecondaryPercentage,
		r.ActivityStart,
		r.ActivityEnd,
		util.FormatInt(r.ActivityDuration),
		EscapeCell(r.ActivityComment),
		EscapeCell(r.BreakAction),
		EscapeCell(r.SecondaryAction),
		EscapeCell(r.ActiveNotes),
		EscapeCell(r.BreakNotes),
		EscapeCell(r.IdleNotes),
		EscapeCell(r.SessionNotes),
	}
}

// SheetRows builds the full upload payload, header first.
func SheetRows(rows []Row) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, append([]string(nil), SheetHeader...))
	for _, r := range rows {
		out = append(out, SheetRow(r))
	}
	return out
}
