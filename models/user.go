package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Staff operate the front desk, cleaners run housekeeping,
// guests use the self-service portal.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleCleaner = "cleaner"
	RoleGuest   = "guest"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	FullName string `gorm:"size:255" json:"full_name"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	Role     string `gorm:"size:32;default:guest" json:"role"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`

	// Deactivated accounts keep their history but can no longer log in.
	DeactivatedAt *time.Time `gorm:"column:deactivated_at" json:"deactivated_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsDeactivated reports whether the account has been switched off.
func (u *User) IsDeactivated() bool {
	return u.DeactivatedAt != nil
}

func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCleaner, RoleGuest:
		return true
	}
	return false
}

// EmployeeRole reports whether r is a role managed through employee
// administration. Guest accounts come only from self-service registration.
func EmployeeRole(r string) bool {
	return ValidRole(r) && r != RoleGuest
}
