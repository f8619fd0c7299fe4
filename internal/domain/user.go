package domain

import "time"

// Role represents a user role in the system
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleManager  Role = "RESTAURANT_MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleManager || r == RoleAdmin
}

// User represents a registered account.
// Роль неизменяема после регистрации и определяет доступные операции.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        *string
	CreatedAt    time.Time
}
