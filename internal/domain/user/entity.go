package user

import "time"

// User is a dashboard account (managers and admins), not a tracked staff
// member. Staff presence data lives in the staff domain.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)
