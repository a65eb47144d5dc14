package services

import (
	"fmt"
	"strings"

	"github.com/chaiandgrill/pos-api/internal/models"
	"gorm.io/gorm"
)

// UserService manages staff accounts and authentication
type UserService interface {
	// Authenticate verifies a name/secret pair and returns the matching account
	Authenticate(name, password string) (*models.User, error)
	// ListUsers retrieves all accounts ordered by name
	ListUsers() ([]models.User, error)
	// CreateUser adds a new account with a hashed secret
	CreateUser(name, password, role string) (models.User, error)
	// UpdateUser edits an account; an empty password keeps the stored secret
	UpdateUser(id uint, name, password, role string) error
	// DeleteUser removes an account that has issued no bills
	DeleteUser(id uint) error
	// GetUserByID retrieves a single account
	GetUserByID(id uint) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Authenticate(name, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		// Absent account and wrong secret are indistinguishable to the caller.
		return nil, models.ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return users, nil
}

func (s *userService) CreateUser(name, password, role string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, fmt.Errorf("%w: user name is required", models.ErrValidation)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", models.ErrValidation)
	}
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("%w: role must be %q or %q", models.ErrValidation, models.RoleAdmin, models.RoleCashier)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return models.User{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if count > 0 {
		return models.User{}, fmt.Errorf("%w: user %q", models.ErrDuplicateName, name)
	}

	user := models.User{Name: name, Password: password, Role: role}
	if err := user.HashPassword(); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return user, nil
}

func (s *userService) UpdateUser(id uint, name, password, role string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: user name is required", models.ErrValidation)
	}
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: role must be %q or %q", models.ErrValidation, models.RoleAdmin, models.RoleCashier)
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return translateLookupErr(err, "user", id)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: user %q", models.ErrDuplicateName, name)
	}

	user.Name = name
	user.Role = role
	if password != "" {
		user.Password = password
		if err := user.HashPassword(); err != nil {
			return fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
	}
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *userService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return translateLookupErr(err, "user", id)
	}

	// Issued bills keep a reference to their cashier.
	var issued int64
	if err := s.db.Model(&models.Bill{}).Where("user_id = ?", id).Count(&issued).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if issued > 0 {
		return fmt.Errorf("%w: user %q issued %d bills", models.ErrReferentialConflict, user.Name, issued)
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translateLookupErr(err, "user", id)
	}
	return &user, nil
}
