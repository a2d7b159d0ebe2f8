package entities

import "time"

type Role struct {
	RoleID      string
	Permissions []string
}

// RoleAssignment binds a role to a subject email.
type RoleAssignment struct {
	Email     string
	RoleID    string
	GrantedBy string
	GrantedAt time.Time
}
