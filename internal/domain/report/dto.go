package report

import (
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/validator"
)

// ActivityReportRequest filters the per-staff activity report.
// Date defaults to today when empty. DepartmentID "all" or empty
// means no department filter.
type ActivityReportRequest struct {
	Date         string   `json:"date"`
	DepartmentID string   `json:"department_id"`
	ProjectIDs   []string `json:"project_ids"`
	Search       string   `json:"search"`
}

func (r *ActivityReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportRow carries per-staff totals summed from real entries for the
// requested date. All durations are whole seconds.
type ReportRow struct {
	StaffID           string   `json:"staff_id"`
	StaffName         string   `json:"staff_name"`
	DepartmentName    string   `json:"department_name"`
	ProjectNames      []string `json:"project_names"`
	TotalWorkSeconds  int64    `json:"total_work_seconds"`
	TotalBreakSeconds int64    `json:"total_break_seconds"`
	OvertimeSeconds   int64    `json:"overtime_seconds"`
}

// ReportTotals sums every numeric column across the filtered set.
type ReportTotals struct {
	TotalWorkSeconds  int64 `json:"total_work_seconds"`
	TotalBreakSeconds int64 `json:"total_break_seconds"`
	OvertimeSeconds   int64 `json:"overtime_seconds"`
}

type ActivityReport struct {
	Date        string       `json:"date"`
	GeneratedAt string       `json:"generated_at"`
	Rows        []ReportRow  `json:"rows"`
	Totals      ReportTotals `json:"totals"`
}
