package http

import (
	"log/slog"
	"net/http"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master"
	"github.com/ezbpo/staff-activity-backend-go/internal/handler/http/response"
)

type MasterDataHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	ListStatusDefinitions(w http.ResponseWriter, r *http.Request)
}

type MasterDataHandlerImpl struct {
	masterService master.MasterDataService
}

func NewMasterDataHandler(masterService master.MasterDataService) MasterDataHandler {
	return &MasterDataHandlerImpl{masterService: masterService}
}

// ListDepartments implements MasterDataHandler.
func (h *MasterDataHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// ListProjects implements MasterDataHandler.
func (h *MasterDataHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.masterService.ListProjects(r.Context())
	if err != nil {
		slog.Error("ListProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// ListStatusDefinitions implements MasterDataHandler.
func (h *MasterDataHandlerImpl) ListStatusDefinitions(w http.ResponseWriter, r *http.Request) {
	definitions, err := h.masterService.ListStatusDefinitions(r.Context())
	if err != nil {
		slog.Error("ListStatusDefinitions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, definitions)
}
