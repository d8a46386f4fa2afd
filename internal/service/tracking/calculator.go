package tracking

import (
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
)

// Metrics are the values derived from one status entry and its
// definition. OvertimeSeconds is never negative and is only non-zero
// when the definition declares a positive bound.
type Metrics struct {
	DurationSeconds    int64
	MaxDurationSeconds int64
	OvertimeSeconds    int64
	Open               bool
}

// ClosedMetrics computes the historical metrics for an entry. An open
// entry has no fixed duration until it is closed, so it contributes 0
// to report totals. A malformed entry (end before start) clamps to 0
// instead of failing; the data belongs to an external system of
// record and is consumed read-only.
func ClosedMetrics(e tracking.StatusEntry, def status.StatusDefinition) Metrics {
	m := Metrics{
		MaxDurationSeconds: def.MaxDuration(),
		Open:               e.End == nil,
	}
	if e.End == nil {
		return m
	}
	m.DurationSeconds = clampSeconds(e.End.Sub(e.Start))
	m.OvertimeSeconds = overtime(m.DurationSeconds, m.MaxDurationSeconds)
	return m
}

// LiveMetrics computes the metrics for the live dashboard, where an
// open entry is still accumulating against now.
func LiveMetrics(e tracking.StatusEntry, def status.StatusDefinition, now time.Time) Metrics {
	if e.End != nil {
		return ClosedMetrics(e, def)
	}
	m := Metrics{
		MaxDurationSeconds: def.MaxDuration(),
		Open:               true,
	}
	m.DurationSeconds = clampSeconds(now.Sub(e.Start))
	m.OvertimeSeconds = overtime(m.DurationSeconds, m.MaxDurationSeconds)
	return m
}

func clampSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// overtime is the strict excess over a positive bound. A duration of
// exactly the bound is not overtime.
func overtime(durationSeconds, maxSeconds int64) int64 {
	if maxSeconds <= 0 || durationSeconds <= maxSeconds {
		return 0
	}
	return durationSeconds - maxSeconds
}
