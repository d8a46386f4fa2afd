package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/dashboard"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/ezbpo/staff-activity-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	Kpi(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	StaffEntries(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Kpi implements DashboardHandler.
func (h *DashboardHandlerImpl) Kpi(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.dashboardService.Kpi(r.Context())
	if err != nil {
		slog.Error("Kpi service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi)
}

// ListStaff implements DashboardHandler.
func (h *DashboardHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	q := parseStaffQuery(r)

	page, err := h.dashboardService.ListStaff(r.Context(), q)
	if err != nil {
		slog.Error("ListStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, page.Rows, &response.Meta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalCount,
		TotalPages: page.PageCount,
	})
}

// StaffEntries implements DashboardHandler.
func (h *DashboardHandlerImpl) StaffEntries(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	window := tracking.ParseWindow(r.URL.Query().Get("window"))

	entries, err := h.dashboardService.StaffEntries(r.Context(), staffID, window)
	if err != nil {
		slog.Error("StaffEntries service error", "error", err, "staff_id", staffID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Refresh implements DashboardHandler.
func (h *DashboardHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboardService.Refresh(r.Context()); err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dashboard refreshed", nil)
}

func parseStaffQuery(r *http.Request) dashboard.StaffQuery {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}

	var projectIDs []string
	if raw := query.Get("project_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				projectIDs = append(projectIDs, id)
			}
		}
	}

	return dashboard.StaffQuery{
		DepartmentID: query.Get("department_id"),
		ProjectIDs:   projectIDs,
		Search:       query.Get("search"),
		Predicate:    dashboard.Predicate(query.Get("predicate")),
		Page:         page,
		PageSize:     pageSize,
	}
}
