// models/user.go
package models

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles ที่ระบบรู้จัก (single users table + role discriminator)
const (
	RoleCustomer       = "Customer"
	RoleOnSiteCustomer = "OnSiteCustomer"
	RoleStaff          = "Staff"
	RoleAdmin          = "Admin"
)

type User struct {
	gorm.Model

	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"`
	FullName string `gorm:"size:255" json:"fullName"`
	Gender   string `gorm:"size:16" json:"gender"`

	BirthDate   *time.Time `json:"birthDate,omitempty"`
	PhoneNumber string     `gorm:"size:32" json:"phoneNumber,omitempty"`

	Role       string `gorm:"size:32;index" json:"role"`
	Status     bool   `gorm:"default:true" json:"status"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`

	// Customer only: loyalty balance. Debited by booking redemption, never
	// incremented here.
	Point int64 `gorm:"default:0" json:"point"`

	// Staff only
	Salary *int64 `json:"salary,omitempty"`
}

func IsCustomerRole(role string) bool {
	return role == RoleCustomer || role == RoleOnSiteCustomer
}

func IsElevatedRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}

// NewUser is the only way a user comes into existence: password strength and
// hashing happen here, never as a persistence hook.
func NewUser(email, plainPassword, fullName, gender, role string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("invalid email")
	}
	if len(plainPassword) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, errors.New("fullName is required")
	}
	switch role {
	case RoleCustomer, RoleOnSiteCustomer, RoleStaff, RoleAdmin:
	default:
		return nil, errors.New("unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Email:    email,
		Password: string(hash),
		FullName: strings.TrimSpace(fullName),
		Gender:   gender,
		Role:     role,
		Status:   true,
	}, nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
