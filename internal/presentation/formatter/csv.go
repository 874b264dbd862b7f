package formatter

import (
	"encoding/csv"
	"io"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
	"github.com/mhowell/go-timetrack/internal/util"
)

// TimelineHeader is the stable column order of the simple timeline CSV
// export. Consumers match on the exact header strings.
var TimelineHeader = []string{
	"Date", "Type", "Sphere", "Project/Action",
	"Start Time", "Duration (seconds)", "Duration", "Comment",
}

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []timeline.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(TimelineHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			row.Type,
			row.Sphere,
			row.Name,
			row.Start,
			util.FormatInt(row.Duration),
			util.FormatSeconds(row.Duration),
			row.Comment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
