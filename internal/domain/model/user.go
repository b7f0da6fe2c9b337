package model

import "time"

// UserRole separates regular members from catalog administrators.
type UserRole string

const (
	UserRoleMember UserRole = "user"
	UserRoleAdmin  UserRole = "admin"
)

// User represents a registered member of the recycling-rewards program.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
