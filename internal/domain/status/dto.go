package status

// DefinitionResponse is the catalog entry shape served to clients.
type DefinitionResponse struct {
	ID                 string  `json:"id"`
	Key                string  `json:"key"`
	Name               string  `json:"name"`
	MaxDurationSeconds *int64  `json:"max_duration_seconds,omitempty"`
	IsLoginKind        bool    `json:"is_login_kind"`
	IsLogoutKind       bool    `json:"is_logout_kind"`
	IsBreakKind        bool    `json:"is_break_kind"`
	IsWorkKind         bool    `json:"is_work_kind"`
	Color              *string `json:"color,omitempty"`
	BackgroundColor    *string `json:"background_color,omitempty"`
}

func ToDefinitionResponse(d StatusDefinition) DefinitionResponse {
	return DefinitionResponse{
		ID:                 d.ID,
		Key:                d.Key,
		Name:               d.Name,
		MaxDurationSeconds: d.MaxDurationSeconds,
		IsLoginKind:        d.IsLoginKind,
		IsLogoutKind:       d.IsLogoutKind,
		IsBreakKind:        d.IsBreakKind,
		IsWorkKind:         d.IsWorkKind,
		Color:              d.Color,
		BackgroundColor:    d.BackgroundColor,
	}
}
