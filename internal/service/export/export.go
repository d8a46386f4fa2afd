package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/report"
)

// Format selects an export encoding for a generated report.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat normalizes a format query value, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// FileName returns the download name for a report of the given date.
func (f Format) FileName(date string) string {
	return fmt.Sprintf("activity-report-%s.%s", date, string(f))
}

// Write encodes the report onto w in the selected format.
func Write(w io.Writer, f Format, rep report.ActivityReport) error {
	if f == FormatJSON {
		return WriteJSON(w, rep)
	}
	return WriteCSV(w, rep)
}

// WriteCSV renders the report as one row per staff member plus a
// trailing totals row. Durations are formatted hh:mm:ss so the file
// opens cleanly in spreadsheet tools.
func WriteCSV(w io.Writer, rep report.ActivityReport) error {
	cw := csv.NewWriter(w)

	header := []string{"Staff", "Department", "Projects", "Work Time", "Break Time", "Overtime"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rep.Rows {
		record := []string{
			row.StaffName,
			row.DepartmentName,
			strings.Join(row.ProjectNames, "; "),
			formatDuration(row.TotalWorkSeconds),
			formatDuration(row.TotalBreakSeconds),
			formatDuration(row.OvertimeSeconds),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	totals := []string{
		"Total",
		"",
		"",
		formatDuration(rep.Totals.TotalWorkSeconds),
		formatDuration(rep.Totals.TotalBreakSeconds),
		formatDuration(rep.Totals.OvertimeSeconds),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("failed to write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the report as an indented JSON document.
func WriteJSON(w io.Writer, rep report.ActivityReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report json: %w", err)
	}
	return nil
}

func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
