package tracking

import (
	"sort"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
)

// Latest returns the entry with the greatest Start. Entries arrive in
// no guaranteed order, so this never trusts slice position. Equal
// starts tie-break on ID so the result is deterministic.
func Latest(entries []tracking.StatusEntry) (tracking.StatusEntry, bool) {
	if len(entries) == 0 {
		return tracking.StatusEntry{}, false
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Start.After(latest.Start) || (e.Start.Equal(latest.Start) && e.ID > latest.ID) {
			latest = e
		}
	}
	return latest, true
}

// IsOnline reports whether a staff member is currently online.
//
// Online is the default unless the latest entry is an explicit logout
// kind: breaks, meetings and project work all imply presence, and an
// unknown definition is unclassified rather than a logout. No entries
// at all means not-yet-seen, which is offline.
func IsOnline(entries []tracking.StatusEntry, catalog status.Catalog) bool {
	latest, ok := Latest(entries)
	if !ok {
		return false
	}
	def, _ := catalog.Lookup(latest.StatusDefinitionID)
	return !def.IsLogoutKind
}

// SortNewestFirst orders entries by Start descending, ID descending as
// tie-break, for "most recent first" displays.
func SortNewestFirst(entries []tracking.StatusEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Start.Equal(entries[j].Start) {
			return entries[i].Start.After(entries[j].Start)
		}
		return entries[i].ID > entries[j].ID
	})
}
