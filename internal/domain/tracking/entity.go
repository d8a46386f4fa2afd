package tracking

import "time"

// StatusEntry is one timestamped status-change event for one staff
// member. The backend that records status changes is the system of
// record; this service reads entries and derives presentation values,
// it never mutates them.
//
// End is nil while the entry is still open. End >= Start is a
// data-quality expectation, not something callers may assume.
type StatusEntry struct {
	ID                 string
	StaffID            string
	StatusDefinitionID string
	ProjectID          *string
	Start              time.Time
	End                *time.Time
	Note               *string
}

// Window selects how much of a staff member's history to retrieve.
type Window string

const (
	WindowToday Window = "today"
	WindowAll   Window = "all"
)

func ParseWindow(s string) Window {
	if s == string(WindowAll) {
		return WindowAll
	}
	return WindowToday
}
