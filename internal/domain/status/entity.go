package status

// StatusDefinition is catalog metadata for one status kind (login,
// lunch break, project work, ...). Loaded once per session and treated
// as immutable reference data.
//
// MaxDurationSeconds nil or <= 0 means the status is unbounded. At
// most one of IsLoginKind/IsLogoutKind is expected to be set; the
// classification flags come straight from the upstream catalog.
type StatusDefinition struct {
	ID                 string
	Key                string
	Name               string
	MaxDurationSeconds *int64
	IsLoginKind        bool
	IsLogoutKind       bool
	IsBreakKind        bool
	IsWorkKind         bool
	Color              *string
	BackgroundColor    *string
}

// MaxDuration returns the positive bound in seconds, or 0 when the
// status is unbounded.
func (d StatusDefinition) MaxDuration() int64 {
	if d.MaxDurationSeconds == nil || *d.MaxDurationSeconds <= 0 {
		return 0
	}
	return *d.MaxDurationSeconds
}
