package staff

// Staff is a tracked employee on the activity dashboard.
type Staff struct {
	ID           string
	FirstName    string
	LastName     string
	Email        *string
	DepartmentID string
	ProjectIDs   []string
	AvatarURL    *string
	IsActive     bool
}

// DisplayName is the name shown on dashboard rows and report rows.
func (s Staff) DisplayName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
