package activity

import (
	"testing"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/department"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/project"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
)

var (
	testDay   = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	breakMax  = int64(300)
	loginTime = testDay.Add(8 * time.Hour)
)

func testDefinitions() []status.StatusDefinition {
	return []status.StatusDefinition{
		{ID: "login", Name: "Login", IsLoginKind: true},
		{ID: "logout", Name: "Logout", IsLogoutKind: true},
		{ID: "lunch-break", Name: "Lunch Break", IsBreakKind: true, MaxDurationSeconds: &breakMax},
		{ID: "project-work", Name: "Project Work", IsWorkKind: true},
	}
}

func testStaff(id, first, last, departmentID string, projectIDs ...string) staff.Staff {
	email := first + "@example.com"
	return staff.Staff{
		ID:           id,
		FirstName:    first,
		LastName:     last,
		Email:        &email,
		DepartmentID: departmentID,
		ProjectIDs:   projectIDs,
		IsActive:     true,
	}
}

func closedAt(id, staffID, defID string, start time.Time, seconds int64) tracking.StatusEntry {
	end := start.Add(time.Duration(seconds) * time.Second)
	return tracking.StatusEntry{
		ID:                 id,
		StaffID:            staffID,
		StatusDefinitionID: defID,
		Start:              start,
		End:                &end,
	}
}

func withProject(e tracking.StatusEntry, projectID string) tracking.StatusEntry {
	e.ProjectID = &projectID
	return e
}

func buildTestSnapshot(staffList []staff.Staff, entries []tracking.StatusEntry) *Snapshot {
	dayStart, dayEnd := DayWindow(testDay)
	return BuildSnapshot(
		staffList,
		entries,
		testDefinitions(),
		[]department.Department{
			{ID: "dep-support", Name: "Customer Support"},
			{ID: "dep-sales", Name: "Sales"},
		},
		[]project.Project{
			{ID: "proj-alpha", Name: "Alpha Launch"},
			{ID: "proj-beta", Name: "Beta Rollout"},
		},
		dayStart, dayEnd,
		testDay.Add(12*time.Hour),
	)
}

func TestComputeKpiCountsDistinctStaffForWarnings(t *testing.T) {
	staffList := []staff.Staff{
		testStaff("st-1", "Ana", "Diaz", "dep-support"),
		testStaff("st-2", "Ben", "Cruz", "dep-support"),
	}
	// Ana has three overtime breaks, Ben none
	entries := []tracking.StatusEntry{
		closedAt("e1", "st-1", "lunch-break", loginTime, 400),
		closedAt("e2", "st-1", "lunch-break", loginTime.Add(time.Hour), 350),
		closedAt("e3", "st-1", "lunch-break", loginTime.Add(2*time.Hour), 500),
		closedAt("e4", "st-2", "project-work", loginTime, 3600),
	}

	kpi := ComputeKpi(buildTestSnapshot(staffList, entries), testDay.Add(12*time.Hour))
	assert.Equal(t, 1, kpi.Warnings)
}

func TestComputeKpiCountsDistinctProjects(t *testing.T) {
	staffList := []staff.Staff{
		testStaff("st-1", "Ana", "Diaz", "dep-support", "proj-alpha"),
		testStaff("st-2", "Ben", "Cruz", "dep-support", "proj-beta"),
	}
	// Five project entries but only two distinct projects
	entries := []tracking.StatusEntry{
		withProject(closedAt("e1", "st-1", "project-work", loginTime, 600), "proj-alpha"),
		withProject(closedAt("e2", "st-1", "project-work", loginTime.Add(time.Hour), 600), "proj-alpha"),
		withProject(closedAt("e3", "st-2", "project-work", loginTime, 600), "proj-beta"),
		withProject(closedAt("e4", "st-2", "project-work", loginTime.Add(time.Hour), 600), "proj-beta"),
		withProject(closedAt("e5", "st-2", "project-work", loginTime.Add(2*time.Hour), 600), "proj-alpha"),
	}

	kpi := ComputeKpi(buildTestSnapshot(staffList, entries), testDay.Add(12*time.Hour))
	assert.Equal(t, 2, kpi.ProjectStatusChangesToday)
}

func TestComputeKpiOnlineCount(t *testing.T) {
	staffList := []staff.Staff{
		testStaff("st-1", "Ana", "Diaz", "dep-support"),
		testStaff("st-2", "Ben", "Cruz", "dep-support"),
		testStaff("st-3", "Cara", "Lim", "dep-sales"),
	}
	entries := []tracking.StatusEntry{
		closedAt("e1", "st-1", "login", loginTime, 60),
		closedAt("e2", "st-2", "login", loginTime, 60),
		closedAt("e3", "st-2", "logout", loginTime.Add(8*time.Hour), 0),
		// st-3 has no entries today
	}

	kpi := ComputeKpi(buildTestSnapshot(staffList, entries), testDay.Add(20*time.Hour))
	assert.Equal(t, 1, kpi.Online)
}

func TestHasWarningOpenBreakPastBound(t *testing.T) {
	snap := buildTestSnapshot(nil, nil)
	open := tracking.StatusEntry{
		ID:                 "e1",
		StaffID:            "st-1",
		StatusDefinitionID: "lunch-break",
		Start:              loginTime,
	}

	now := loginTime.Add(400 * time.Second)
	assert.True(t, HasWarning([]tracking.StatusEntry{open}, snap.Catalog, now))

	early := loginTime.Add(200 * time.Second)
	assert.False(t, HasWarning([]tracking.StatusEntry{open}, snap.Catalog, early))
}

func TestComputeTotalsBucketsByKind(t *testing.T) {
	snap := buildTestSnapshot(nil, nil)
	entries := []tracking.StatusEntry{
		closedAt("e1", "st-1", "project-work", loginTime, 3600),
		closedAt("e2", "st-1", "project-work", loginTime.Add(2*time.Hour), 1800),
		closedAt("e3", "st-1", "lunch-break", loginTime.Add(4*time.Hour), 400),
	}

	totals := ComputeTotals(entries, snap.Catalog)
	assert.Equal(t, int64(5400), totals.WorkSeconds)
	assert.Equal(t, int64(400), totals.BreakSeconds)
	assert.Equal(t, int64(100), totals.OvertimeSeconds)
}

func TestComputeTotalsIgnoresOpenEntries(t *testing.T) {
	snap := buildTestSnapshot(nil, nil)
	entries := []tracking.StatusEntry{
		closedAt("e1", "st-1", "project-work", loginTime, 3600),
		{ID: "e2", StaffID: "st-1", StatusDefinitionID: "project-work", Start: loginTime.Add(2 * time.Hour)},
	}

	totals := ComputeTotals(entries, snap.Catalog)
	assert.Equal(t, int64(3600), totals.WorkSeconds)
}
