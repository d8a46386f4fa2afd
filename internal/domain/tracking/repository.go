package tracking

import (
	"context"
	"time"
)

// StatusEntryRepository reads the append-only status-change log.
// Implementations make no ordering guarantee; callers must sort.
type StatusEntryRepository interface {
	ListByStaff(ctx context.Context, staffID string, window Window) ([]StatusEntry, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]StatusEntry, error)
}
