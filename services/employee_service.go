package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pupinn-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeService manages staff accounts (admin, staff, cleaner). Guest
// accounts are out of its reach; they only come from self-service
// registration.
type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

var employeeRoles = []string{models.RoleAdmin, models.RoleStaff, models.RoleCleaner}

// ListEmployees returns staff accounts, optionally filtered by role and a
// name/username substring. Deactivated accounts are hidden unless asked for.
func (s *EmployeeService) ListEmployees(role, search string, includeDeactivated bool) ([]models.User, error) {
	if role != "" && !models.EmployeeRole(role) {
		return nil, fmt.Errorf("%w: unknown employee role %q", ErrValidation, role)
	}

	q := s.DB.Order("full_name ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	} else {
		q = q.Where("role IN ?", employeeRoles)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(username) LIKE ?", like, like)
	}
	if !includeDeactivated {
		q = q.Where("deactivated_at IS NULL")
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, nil
}

// GetEmployee loads a staff account. Guest accounts are invisible here.
func (s *EmployeeService) GetEmployee(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if !models.EmployeeRole(user.Role) {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// CreateEmployee adds a staff account with one of the employee roles.
func (s *EmployeeService) CreateEmployee(username, password, fullName, role, phone string) (*models.User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	fullName = strings.TrimSpace(fullName)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if !models.EmployeeRole(role) {
		return nil, fmt.Errorf("%w: guest accounts cannot be created through employee management", ErrValidation)
	}
	if fullName == "" {
		fullName = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		FullName: fullName,
		Password: string(hash),
		Role:     role,
		Phone:    strings.TrimSpace(phone),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: username %s is taken", ErrValidation, username)
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &user, nil
}

// UpdateEmployee changes name, phone and/or role on a staff account.
func (s *EmployeeService) UpdateEmployee(userID uint, fullName, phone, role *string) (*models.User, error) {
	user, err := s.GetEmployee(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if fullName != nil {
		name := strings.TrimSpace(*fullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrValidation)
		}
		updates["full_name"] = name
	}
	if phone != nil {
		updates["phone"] = strings.TrimSpace(*phone)
	}
	if role != nil {
		if !models.EmployeeRole(*role) {
			return nil, fmt.Errorf("%w: cannot change an employee to role %q", ErrValidation, *role)
		}
		if user.Role == models.RoleAdmin && *role != models.RoleAdmin {
			if err := s.requireAnotherActiveAdmin(user.ID); err != nil {
				return nil, err
			}
		}
		updates["role"] = *role
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.GetEmployee(userID)
}

// requireAnotherActiveAdmin guards the operations that would leave the
// system without a working admin account.
func (s *EmployeeService) requireAnotherActiveAdmin(excludeID uint) error {
	var n int64
	err := s.DB.Model(&models.User{}).
		Where("role = ? AND id <> ? AND deactivated_at IS NULL", models.RoleAdmin, excludeID).
		Count(&n).Error
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: at least one active admin account must remain", ErrValidation)
	}
	return nil
}

// DeactivateEmployee switches an account off. The account keeps its
// history and can be reactivated later.
func (s *EmployeeService) DeactivateEmployee(userID uint) (*models.User, error) {
	user, err := s.GetEmployee(userID)
	if err != nil {
		return nil, err
	}
	if user.IsDeactivated() {
		return user, nil
	}
	if user.Role == models.RoleAdmin {
		if err := s.requireAnotherActiveAdmin(user.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if err := s.DB.Model(user).Update("deactivated_at", &now).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return s.GetEmployee(userID)
}

// ReactivateEmployee switches a deactivated account back on.
func (s *EmployeeService) ReactivateEmployee(userID uint) (*models.User, error) {
	user, err := s.GetEmployee(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsDeactivated() {
		return nil, fmt.Errorf("%w: account is already active", ErrValidation)
	}

	if err := s.DB.Model(user).Update("deactivated_at", nil).Error; err != nil {
		return nil, fmt.Errorf("failed to reactivate employee: %w", err)
	}
	return s.GetEmployee(userID)
}

// ResetPassword replaces an employee's password outright. There is no
// old-password check: this is the admin recovery path.
func (s *EmployeeService) ResetPassword(userID uint, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	user, err := s.GetEmployee(userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
