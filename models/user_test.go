package models

import (
	"testing"
	"time"
)

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleStaff, RoleCleaner, RoleGuest} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%s) = false", r)
		}
	}
	for _, r := range []string{"", "butler", "superadmin", "Admin"} {
		if ValidRole(r) {
			t.Errorf("ValidRole(%q) = true, want false", r)
		}
	}
}

func TestEmployeeRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleStaff, RoleCleaner} {
		if !EmployeeRole(r) {
			t.Errorf("EmployeeRole(%s) = false", r)
		}
	}
	if EmployeeRole(RoleGuest) {
		t.Error("EmployeeRole(guest) = true, want false")
	}
	if EmployeeRole("butler") {
		t.Error("EmployeeRole(butler) = true, want false")
	}
}

func TestIsDeactivated(t *testing.T) {
	u := User{}
	if u.IsDeactivated() {
		t.Error("fresh account reported as deactivated")
	}
	now := time.Now()
	u.DeactivatedAt = &now
	if !u.IsDeactivated() {
		t.Error("deactivated account reported as active")
	}
}
