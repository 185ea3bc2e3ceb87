package domain

import "time"

// Role identifies which identity space an account lives in. Users and admins
// are stored separately and the same email may exist in both.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// Account is the shape shared by users and admins.
type Account struct {
	ID           string
	Name         string
	Email        string // unique within its role
	PasswordHash string `json:"-"` // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
