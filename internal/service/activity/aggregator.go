package activity

import (
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	domain "github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/tracking"
)

// Kpi holds the organization-wide counters derived from one snapshot.
type Kpi struct {
	Online                    int
	Warnings                  int
	ProjectStatusChangesToday int
}

// ComputeKpi rolls the per-staff computations into the dashboard
// counters.
//
// Warnings counts distinct staff members with at least one overtime
// entry today: a staff member with three overtime breaks counts once.
// ProjectStatusChangesToday counts distinct projects referenced by
// today's entries, not entries and not staff.
func ComputeKpi(s *Snapshot, now time.Time) Kpi {
	var kpi Kpi

	projects := make(map[string]struct{})
	for _, st := range s.Staff {
		entries := s.Entries[st.ID]
		if tracking.IsOnline(entries, s.Catalog) {
			kpi.Online++
		}
		if HasWarning(entries, s.Catalog, now) {
			kpi.Warnings++
		}
		for _, e := range entries {
			if e.ProjectID != nil && *e.ProjectID != "" {
				projects[*e.ProjectID] = struct{}{}
			}
		}
	}
	kpi.ProjectStatusChangesToday = len(projects)
	return kpi
}

// HasWarning reports whether any entry exceeds its definition's bound.
// Each bounded entry is evaluated independently, and open entries
// accumulate against now so a break running past its bound raises the
// warning while it is still open.
func HasWarning(entries []domain.StatusEntry, catalog status.Catalog, now time.Time) bool {
	for _, e := range entries {
		def, _ := catalog.Lookup(e.StatusDefinitionID)
		if tracking.LiveMetrics(e, def, now).OvertimeSeconds > 0 {
			return true
		}
	}
	return false
}

// StaffTotals are one staff member's summed durations for a day.
type StaffTotals struct {
	WorkSeconds     int64
	BreakSeconds    int64
	OvertimeSeconds int64
}

// ComputeTotals sums closed-entry durations into work/break buckets by
// definition classification, and overtime across all entries. Open
// entries contribute nothing until they are closed; the live dashboard
// is the only place that computes against now.
func ComputeTotals(entries []domain.StatusEntry, catalog status.Catalog) StaffTotals {
	var t StaffTotals
	for _, e := range entries {
		def, _ := catalog.Lookup(e.StatusDefinitionID)
		m := tracking.ClosedMetrics(e, def)
		if def.IsWorkKind {
			t.WorkSeconds += m.DurationSeconds
		}
		if def.IsBreakKind {
			t.BreakSeconds += m.DurationSeconds
		}
		t.OvertimeSeconds += m.OvertimeSeconds
	}
	return t
}
