package activity

import (
	"testing"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/dashboard"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterTestSnapshot() *Snapshot {
	staffList := []staff.Staff{
		testStaff("st-1", "Ana", "Diaz", "dep-support", "proj-alpha"),
		testStaff("st-2", "Ben", "Cruz", "dep-sales", "proj-beta"),
		testStaff("st-3", "Cara", "Lim", "dep-support", "proj-alpha", "proj-beta"),
	}
	entries := []tracking.StatusEntry{
		closedAt("e1", "st-1", "login", loginTime, 60),
		closedAt("e2", "st-2", "login", loginTime, 60),
		closedAt("e3", "st-2", "lunch-break", loginTime.Add(4*time.Hour), 400),
		closedAt("e4", "st-3", "logout", loginTime.Add(8*time.Hour), 0),
	}
	return buildTestSnapshot(staffList, entries)
}

func staffIDs(rows []staff.Staff) []string {
	ids := make([]string, 0, len(rows))
	for _, st := range rows {
		ids = append(ids, st.ID)
	}
	return ids
}

func TestFilterNoFiltersReturnsCanonicalOrder(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{}, snap.LoadedAt)
	assert.Equal(t, []string{"st-1", "st-2", "st-3"}, staffIDs(rows))
}

func TestFilterDepartmentAllIsNoFilter(t *testing.T) {
	snap := filterTestSnapshot()

	all := Filter(snap, dashboard.StaffQuery{DepartmentID: dashboard.DepartmentAll}, snap.LoadedAt)
	assert.Len(t, all, 3)

	support := Filter(snap, dashboard.StaffQuery{DepartmentID: "dep-support"}, snap.LoadedAt)
	assert.Equal(t, []string{"st-1", "st-3"}, staffIDs(support))
}

func TestFilterProjectSetMatchesAnyMembership(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{ProjectIDs: []string{"proj-beta"}}, snap.LoadedAt)
	assert.Equal(t, []string{"st-2", "st-3"}, staffIDs(rows))
}

func TestFilterSearchMatchesProjectName(t *testing.T) {
	snap := filterTestSnapshot()

	// "beta" appears in no staff name or email, only in a project name
	rows := Filter(snap, dashboard.StaffQuery{Search: "beta"}, snap.LoadedAt)
	assert.Equal(t, []string{"st-2", "st-3"}, staffIDs(rows))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{Search: "ANA"}, snap.LoadedAt)
	require.Len(t, rows, 1)
	assert.Equal(t, "st-1", rows[0].ID)
}

func TestFilterPredicateOnline(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{Predicate: dashboard.PredicateOnline}, snap.LoadedAt)
	assert.Equal(t, []string{"st-1", "st-2"}, staffIDs(rows))
}

func TestFilterPredicateWarning(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{Predicate: dashboard.PredicateWarning}, snap.LoadedAt)
	assert.Equal(t, []string{"st-2"}, staffIDs(rows))
}

func TestFilterCombinedFiltersIntersect(t *testing.T) {
	snap := filterTestSnapshot()

	rows := Filter(snap, dashboard.StaffQuery{
		DepartmentID: "dep-support",
		ProjectIDs:   []string{"proj-beta"},
	}, snap.LoadedAt)
	assert.Equal(t, []string{"st-3"}, staffIDs(rows))
}

func TestFilterIsDeterministic(t *testing.T) {
	snap := filterTestSnapshot()
	q := dashboard.StaffQuery{Search: "beta"}

	first := Filter(snap, q, snap.LoadedAt)
	second := Filter(snap, q, snap.LoadedAt)
	assert.Equal(t, staffIDs(first), staffIDs(second))
}

func TestBoundsPageCountNeverBelowOne(t *testing.T) {
	b := Bounds(0, 1, 20)
	assert.Equal(t, 1, b.PageCount)
	assert.Equal(t, 0, b.Start)
	assert.Equal(t, 0, b.End)
}

func TestBoundsCeilingDivision(t *testing.T) {
	b := Bounds(41, 1, 20)
	assert.Equal(t, 3, b.PageCount)
}

func TestBoundsClampsOutOfRangePage(t *testing.T) {
	b := Bounds(41, 9, 20)
	assert.Equal(t, 3, b.Page)
	assert.Equal(t, 40, b.Start)
	assert.Equal(t, 41, b.End)

	b = Bounds(41, 0, 20)
	assert.Equal(t, 1, b.Page)
}

func TestBoundsDefaultsPageSize(t *testing.T) {
	b := Bounds(50, 1, 0)
	assert.Equal(t, DefaultPageSize, b.PageSize)
}

func TestQueryTrackerResetsPageOnFilterChange(t *testing.T) {
	tracker := NewQueryTracker()

	first := tracker.Resolve("user-1", dashboard.StaffQuery{Search: "ana", Page: 1})
	assert.Equal(t, 1, first.Page)

	// Same filters, page advance is honored
	second := tracker.Resolve("user-1", dashboard.StaffQuery{Search: "ana", Page: 3})
	assert.Equal(t, 3, second.Page)

	// Changed search resets the page
	third := tracker.Resolve("user-1", dashboard.StaffQuery{Search: "ben", Page: 3})
	assert.Equal(t, 1, third.Page)
}

func TestQueryTrackerProjectOrderDoesNotResetPage(t *testing.T) {
	tracker := NewQueryTracker()

	tracker.Resolve("user-1", dashboard.StaffQuery{ProjectIDs: []string{"a", "b"}, Page: 1})
	q := tracker.Resolve("user-1", dashboard.StaffQuery{ProjectIDs: []string{"b", "a"}, Page: 2})
	assert.Equal(t, 2, q.Page)
}

func TestQueryTrackerSessionsAreIndependent(t *testing.T) {
	tracker := NewQueryTracker()

	tracker.Resolve("user-1", dashboard.StaffQuery{Search: "ana", Page: 2})
	q := tracker.Resolve("user-2", dashboard.StaffQuery{Search: "ben", Page: 2})
	assert.Equal(t, 2, q.Page)
}
