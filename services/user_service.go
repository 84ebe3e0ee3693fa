package services

import (
	"errors"
	"fmt"
	"strings"

	"pupinn-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService backs authentication and the staff/guest account lists. The
// booking engine only ever sees a user as an opaque actor.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// RegisterGuest creates a guest self-service account.
func (s *UserService) RegisterGuest(username, password, fullName, phone string) (*models.User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	fullName = strings.TrimSpace(fullName)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
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
		Role:     models.RoleGuest,
		Phone:    strings.TrimSpace(phone),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: username %s is taken", ErrValidation, username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate verifies a username/password pair. Wrong username and wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", strings.TrimSpace(strings.ToLower(username))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrUserNotFound
	}
	if user.IsDeactivated() {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// ListGuests returns guest accounts for the CRM screens.
func (s *UserService) ListGuests() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", models.RoleGuest).Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return users, nil
}
