package domain

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// IsValid returns true if the role is one of the known roles
func (r UserRole) IsValid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User represents a registered client or staff member
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Role         UserRole
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user has staff privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
