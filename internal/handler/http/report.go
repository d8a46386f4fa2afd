package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/report"
	"github.com/ezbpo/staff-activity-backend-go/internal/handler/http/response"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/export"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Generate implements ReportHandler.
func (h *ReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req report.ActivityReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rep, err := h.reportService.GenerateActivityReport(r.Context(), req)
	if err != nil {
		slog.Error("Generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// Export implements ReportHandler. The format query selects csv
// (default) or json; the report itself is the same either way.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var req report.ActivityReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Export decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rep, err := h.reportService.GenerateActivityReport(r.Context(), req)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(rep.Date)))

	if err := export.Write(w, format, rep); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
