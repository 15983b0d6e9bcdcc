package models

import (
	"time"
)

// Role values form a closed set. Authorization is always an explicit
// membership check against a list of roles; super_admin is not a superset
// of admin and must be listed wherever admin is.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// ValidRole reports whether role belongs to the known set.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents an authenticated principal. Users are created by seeding
// only; there is no public signup endpoint and users are never updated or
// deleted through the API.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
