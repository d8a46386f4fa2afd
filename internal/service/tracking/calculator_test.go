package tracking

import (
	"testing"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
)

func boundedDef(maxSeconds int64) status.StatusDefinition {
	return status.StatusDefinition{
		ID:                 "lunch-break",
		Name:               "Lunch Break",
		MaxDurationSeconds: &maxSeconds,
		IsBreakKind:        true,
	}
}

func closedEntry(start time.Time, seconds int64) tracking.StatusEntry {
	end := start.Add(time.Duration(seconds) * time.Second)
	return tracking.StatusEntry{
		ID:                 "entry-1",
		StaffID:            "staff-1",
		StatusDefinitionID: "lunch-break",
		Start:              start,
		End:                &end,
	}
}

func TestClosedMetricsOvertime(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	m := ClosedMetrics(closedEntry(start, 320), boundedDef(300))
	assert.Equal(t, int64(320), m.DurationSeconds)
	assert.Equal(t, int64(300), m.MaxDurationSeconds)
	assert.Equal(t, int64(20), m.OvertimeSeconds)
	assert.False(t, m.Open)
}

func TestClosedMetricsExactBoundIsNotOvertime(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	m := ClosedMetrics(closedEntry(start, 300), boundedDef(300))
	assert.Equal(t, int64(300), m.DurationSeconds)
	assert.Equal(t, int64(0), m.OvertimeSeconds)
}

func TestClosedMetricsUnboundedDefinition(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	def := status.StatusDefinition{ID: "project-work", Name: "Project Work", IsWorkKind: true}

	m := ClosedMetrics(closedEntry(start, 4*3600), def)
	assert.Equal(t, int64(4*3600), m.DurationSeconds)
	assert.Equal(t, int64(0), m.MaxDurationSeconds)
	assert.Equal(t, int64(0), m.OvertimeSeconds)
}

func TestClosedMetricsMalformedEntryClampsToZero(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	end := start.Add(-10 * time.Minute)
	e := tracking.StatusEntry{ID: "entry-1", Start: start, End: &end}

	m := ClosedMetrics(e, boundedDef(300))
	assert.Equal(t, int64(0), m.DurationSeconds)
	assert.Equal(t, int64(0), m.OvertimeSeconds)
}

func TestClosedMetricsOpenEntryContributesNothing(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := tracking.StatusEntry{ID: "entry-1", Start: start}

	m := ClosedMetrics(e, boundedDef(300))
	assert.True(t, m.Open)
	assert.Equal(t, int64(0), m.DurationSeconds)
	assert.Equal(t, int64(0), m.OvertimeSeconds)
}

func TestLiveMetricsOpenEntryAccumulates(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	now := start.Add(340 * time.Second)
	e := tracking.StatusEntry{ID: "entry-1", Start: start}

	m := LiveMetrics(e, boundedDef(300), now)
	assert.True(t, m.Open)
	assert.Equal(t, int64(340), m.DurationSeconds)
	assert.Equal(t, int64(40), m.OvertimeSeconds)
}

func TestLiveMetricsClosedEntryMatchesClosed(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := closedEntry(start, 320)
	now := start.Add(2 * time.Hour)

	assert.Equal(t, ClosedMetrics(e, boundedDef(300)), LiveMetrics(e, boundedDef(300), now))
}

func TestMetricsAreIdempotent(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := closedEntry(start, 320)
	def := boundedDef(300)

	first := ClosedMetrics(e, def)
	second := ClosedMetrics(e, def)
	assert.Equal(t, first, second)
}
