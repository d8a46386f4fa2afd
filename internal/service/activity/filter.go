package activity

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/dashboard"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/validator"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/tracking"
)

// DefaultPageSize matches the dashboard table's default.
const DefaultPageSize = 20

// Filter returns the staff matching q, preserving the snapshot's
// canonical order. The KPI-derived predicate is applied after the
// department/project/text filters. Identical inputs always yield the
// identical row set.
func Filter(s *Snapshot, q dashboard.StaffQuery, now time.Time) []staff.Staff {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	var out []staff.Staff
	for _, st := range s.Staff {
		if !matchesDepartment(st, q.DepartmentID) {
			continue
		}
		if !matchesProjects(st, q.ProjectIDs) {
			continue
		}
		if needle != "" && !strings.Contains(Corpus(s, st), needle) {
			continue
		}
		switch q.Predicate {
		case dashboard.PredicateOnline:
			if !tracking.IsOnline(s.Entries[st.ID], s.Catalog) {
				continue
			}
		case dashboard.PredicateWarning:
			if !HasWarning(s.Entries[st.ID], s.Catalog, now) {
				continue
			}
		}
		out = append(out, st)
	}
	return out
}

func matchesDepartment(st staff.Staff, departmentID string) bool {
	if departmentID == "" || departmentID == dashboard.DepartmentAll {
		return true
	}
	return st.DepartmentID == departmentID
}

func matchesProjects(st staff.Staff, projectIDs []string) bool {
	if len(projectIDs) == 0 {
		return true
	}
	for _, pid := range st.ProjectIDs {
		if validator.IsInSlice(pid, projectIDs) {
			return true
		}
	}
	return false
}

// Corpus is the free-text match target: the lower-cased,
// space-joined concatenation of name, email, department name and
// resolved project names. A query matching only a project name still
// matches the staff member.
func Corpus(s *Snapshot, st staff.Staff) string {
	parts := []string{st.DisplayName()}
	if st.Email != nil {
		parts = append(parts, *st.Email)
	}
	if name := s.DepartmentName(st.DepartmentID); name != "" {
		parts = append(parts, name)
	}
	parts = append(parts, s.ProjectLabels(st.ProjectIDs)...)
	return strings.ToLower(strings.Join(parts, " "))
}

// PageBounds is the deterministic slice window for one page.
type PageBounds struct {
	Start     int
	End       int
	Page      int
	PageCount int
	PageSize  int
}

// Bounds computes the pagination window. PageCount is always at least
// 1 even for an empty result set, and an out-of-range page clamps
// into [1, PageCount].
func Bounds(total, page, pageSize int) PageBounds {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return PageBounds{Start: start, End: end, Page: page, PageCount: pageCount, PageSize: pageSize}
}

// QueryTracker owns the per-session pagination state: changing any
// filter input resets the page to 1, so a shrunken result set can
// never leave a view stranded on a page that no longer exists. This
// replaces the legacy pattern of a shared staff list cached in a
// module-global with ad-hoc page fixups at every call site.
type QueryTracker struct {
	mu   sync.Mutex
	last map[string]dashboard.StaffQuery
}

func NewQueryTracker() *QueryTracker {
	return &QueryTracker{last: make(map[string]dashboard.StaffQuery)}
}

// Resolve records q as the session's current query and returns it
// with Page forced to 1 whenever any filter input differs from the
// session's previous query.
func (t *QueryTracker) Resolve(sessionKey string, q dashboard.StaffQuery) dashboard.StaffQuery {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, seen := t.last[sessionKey]
	if seen && !sameFilters(prev, q) {
		q.Page = 1
	}
	t.last[sessionKey] = q
	return q
}

func sameFilters(a, b dashboard.StaffQuery) bool {
	if a.DepartmentID != b.DepartmentID || a.Search != b.Search || a.Predicate != b.Predicate {
		return false
	}
	return sameIDSet(a.ProjectIDs, b.ProjectIDs)
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
