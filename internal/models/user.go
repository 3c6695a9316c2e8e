package models

import (
	"slices"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleOwner    = "owner"
)

var Roles = []string{RoleCustomer, RoleStaff, RoleOwner}

func ValidRole(r string) bool { return slices.Contains(Roles, r) }

// User is an account that can log in
type User struct {
	Base
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:customer" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HashPassword replaces the plain text password with its bcrypt hash
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plain text candidate against the stored hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
