package dashboard

import (
	"context"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
)

// DashboardService exposes the manager dashboard views: KPI cards,
// the filtered staff table and the expandable per-staff history.
type DashboardService interface {
	// Kpi returns the organization-wide counters for today
	Kpi(ctx context.Context) (KpiResponse, error)

	// ListStaff returns the filtered, paginated staff rows with
	// per-row online/warning flags
	ListStaff(ctx context.Context, q StaffQuery) (StaffPage, error)

	// StaffEntries returns one staff member's entries newest-first
	// with computed metrics
	StaffEntries(ctx context.Context, staffID string, window tracking.Window) ([]EntryResponse, error)

	// Refresh forces a snapshot reload (also triggered by loads when
	// the cached snapshot is stale)
	Refresh(ctx context.Context) error
}
