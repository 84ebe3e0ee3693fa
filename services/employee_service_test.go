package services

import (
	"errors"
	"testing"

	"pupinn-backend/models"
)

// The validation guards run before any storage access, so a zero-value
// service is enough to exercise them.
func TestCreateEmployeeValidation(t *testing.T) {
	s := &EmployeeService{}

	cases := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"empty username", "", "longenough", models.RoleStaff},
		{"empty password", "reception", "", models.RoleStaff},
		{"short password", "reception", "short", models.RoleStaff},
		{"unknown role", "reception", "longenough", "butler"},
		{"guest role", "reception", "longenough", models.RoleGuest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.CreateEmployee(c.username, c.password, "Reception Desk", c.role, "")
			if !errors.Is(err, ErrValidation) {
				t.Errorf("CreateEmployee(%s) err = %v, want ErrValidation", c.name, err)
			}
		})
	}
}

func TestResetPasswordValidation(t *testing.T) {
	s := &EmployeeService{}
	if err := s.ResetPassword(1, "short"); !errors.Is(err, ErrValidation) {
		t.Errorf("ResetPassword(short) err = %v, want ErrValidation", err)
	}
}

func TestListEmployeesRoleValidation(t *testing.T) {
	s := &EmployeeService{}
	if _, err := s.ListEmployees("butler", "", false); !errors.Is(err, ErrValidation) {
		t.Errorf("ListEmployees(butler) err = %v, want ErrValidation", err)
	}
	// guest is a valid role but not an employee role
	if _, err := s.ListEmployees(models.RoleGuest, "", false); !errors.Is(err, ErrValidation) {
		t.Errorf("ListEmployees(guest) err = %v, want ErrValidation", err)
	}
}
