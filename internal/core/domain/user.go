package domain

import "time"

// RoleAdmin is the role name required for client-registry management.
// Roles are an open string set read from the credential store; this constant
// only names the one role the route policy refers to.
const RoleAdmin = "admin"

// User models an authenticated actor in the system. A user with a blank role
// name can never log in.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	RoleAlias    string     `json:"role_alias,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}
