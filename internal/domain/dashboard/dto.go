package dashboard

import (
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/validator"
)

// Predicate is an optional KPI-derived row filter, applied after the
// department/project/text filters. Online and warning are mutually
// exclusive by construction (a single enum value).
type Predicate string

const (
	PredicateNone    Predicate = ""
	PredicateOnline  Predicate = "online"
	PredicateWarning Predicate = "warning"
)

// DepartmentAll is the sentinel meaning "no department filter".
const DepartmentAll = "all"

// StaffQuery selects and pages the staff rows a view renders.
type StaffQuery struct {
	DepartmentID string
	ProjectIDs   []string
	Search       string
	Predicate    Predicate
	Page         int
	PageSize     int
}

func (q *StaffQuery) Validate() error {
	var errs validator.ValidationErrors

	switch q.Predicate {
	case PredicateNone, PredicateOnline, PredicateWarning:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "predicate",
			Message: "predicate must be one of: online, warning",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== KPI CARDS ==========

// KpiResponse holds the organization-wide dashboard counters.
// Warnings counts distinct staff members, never raw entries, and
// ProjectStatusChangesToday counts distinct projects touched today.
type KpiResponse struct {
	Online                    int    `json:"online"`
	Warnings                  int    `json:"warnings"`
	ProjectStatusChangesToday int    `json:"project_status_changes_today"`
	GeneratedAt               string `json:"generated_at"`
}

// ========== STAFF TABLE ==========

// CurrentStatus describes the latest entry of an online staff member.
type CurrentStatus struct {
	StatusName      string `json:"status_name"`
	Since           string `json:"since"`
	ElapsedSeconds  int64  `json:"elapsed_seconds"`
	OvertimeSeconds int64  `json:"overtime_seconds"`
}

type StaffRow struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          *string        `json:"email,omitempty"`
	AvatarURL      *string        `json:"avatar_url,omitempty"`
	DepartmentName string         `json:"department_name"`
	ProjectNames   []string       `json:"project_names"`
	Online         bool           `json:"online"`
	Warning        bool           `json:"warning"`
	CurrentStatus  *CurrentStatus `json:"current_status,omitempty"`
}

type StaffPage struct {
	Rows       []StaffRow `json:"rows"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	PageCount  int        `json:"page_count"`
}

// ========== PER-STAFF HISTORY ==========

// EntryResponse is one status entry with its computed metrics,
// rendered newest-first in the expandable history view.
type EntryResponse struct {
	ID                 string  `json:"id"`
	StatusName         string  `json:"status_name"`
	ProjectName        *string `json:"project_name,omitempty"`
	Start              string  `json:"start"`
	End                *string `json:"end,omitempty"`
	Open               bool    `json:"open"`
	DurationSeconds    int64   `json:"duration_seconds"`
	MaxDurationSeconds int64   `json:"max_duration_seconds"`
	OvertimeSeconds    int64   `json:"overtime_seconds"`
	Note               *string `json:"note,omitempty"`
}
