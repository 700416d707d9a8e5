package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum. The same values double as link relationship kinds for the
// caregiver roles (family, staff).
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
	RoleFamily  Role = "family"
	RoleStaff   Role = "staff"
)

// IsCaregiver reports whether the role is valid as a link relationship.
func (r Role) IsCaregiver() bool {
	return r == RoleFamily || r == RoleStaff
}

// User represents a user in the system
type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role     Role   `gorm:"size:20;default:'family'" json:"role"`

	// Relations (not always preloaded)
	Vitals         []Vitals        `gorm:"foreignKey:PatientID" json:"-"`
	DoctorComments []DoctorComment `gorm:"foreignKey:PatientID" json:"-"`
	Inquiries      []Inquiry       `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
