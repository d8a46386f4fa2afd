package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() report.ActivityReport {
	return report.ActivityReport{
		Date:        "2026-08-30",
		GeneratedAt: "2026-08-30T12:00:00Z",
		Rows: []report.ReportRow{
			{
				StaffID:           "st-1",
				StaffName:         "Ana Diaz",
				DepartmentName:    "Customer Support",
				ProjectNames:      []string{"Alpha Launch", "Beta Rollout"},
				TotalWorkSeconds:  27000,
				TotalBreakSeconds: 3600,
				OvertimeSeconds:   120,
			},
			{
				StaffID:          "st-2",
				StaffName:        "Ben Cruz",
				DepartmentName:   "Sales",
				TotalWorkSeconds: 30600,
			},
		},
		Totals: report.ReportTotals{
			TotalWorkSeconds:  57600,
			TotalBreakSeconds: 3600,
			OvertimeSeconds:   120,
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header, two staff rows, one totals row
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Staff", "Department", "Projects", "Work Time", "Break Time", "Overtime"}, records[0])
	assert.Equal(t, []string{"Ana Diaz", "Customer Support", "Alpha Launch; Beta Rollout", "07:30:00", "01:00:00", "00:02:00"}, records[1])
	assert.Equal(t, []string{"Ben Cruz", "Sales", "", "08:30:00", "00:00:00", "00:00:00"}, records[2])
	assert.Equal(t, []string{"Total", "", "", "16:00:00", "01:00:00", "00:02:00"}, records[3])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded report.ActivityReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2026-08-30", decoded.Date)
	assert.Len(t, decoded.Rows, 2)
	assert.Equal(t, int64(57600), decoded.Totals.TotalWorkSeconds)
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Equal(t, "activity-report-2026-08-30.csv", FormatCSV.FileName("2026-08-30"))
}
