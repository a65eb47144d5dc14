package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles a user account can hold. Every account is exactly one of these.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// ValidRole reports whether role is one of the two enumerated account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCashier
}

// User is a staff account that can sign in and issue bills.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:'cashier'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
