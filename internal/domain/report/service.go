package report

import "context"

// ReportService builds the staff activity report for an arbitrary
// filtered staff/date/project selection.
type ReportService interface {
	GenerateActivityReport(ctx context.Context, req ActivityReportRequest) (ActivityReport, error)
}
