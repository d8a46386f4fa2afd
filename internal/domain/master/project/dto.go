package project

// Project is a reference entity used for filtering and label lookup
// only; it carries no computed behavior.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
