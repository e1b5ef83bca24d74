package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User is the canonical account record (PostgreSQL).
// Latitude/Longitude are nil until the geocoding collaborator resolves the
// city/state/zip address; proximity filters must skip users without them.
type User struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Username          string         `json:"username" gorm:"size:20;uniqueIndex"`
	DisplayName       string         `json:"display_name" gorm:"size:100;index"`
	Email             string         `json:"email" gorm:"uniqueIndex"`
	Password          string         `json:"-"` // bcrypt hash, never serialized
	FirebaseUID       *string        `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // nil for local accounts
	City              string         `json:"city" gorm:"size:100"`
	State             string         `json:"state" gorm:"size:100"`
	ZipCode           string         `json:"zip_code" gorm:"size:12"`
	Latitude          *float64       `json:"latitude,omitempty"`
	Longitude         *float64       `json:"longitude,omitempty"`
	AboutMe           string         `json:"about_me"`
	ProfileIncomplete bool           `json:"profile_incomplete" gorm:"default:true"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// HasCoordinate reports whether geocoding has produced a stored location.
func (u *User) HasCoordinate() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// RecomputeProfileIncomplete refreshes the profile_incomplete flag from the
// fields a finished profile requires.
func (u *User) RecomputeProfileIncomplete() {
	required := []string{u.Username, u.DisplayName, u.City, u.State, u.ZipCode}
	for _, f := range required {
		if f == "" {
			u.ProfileIncomplete = true
			return
		}
	}
	u.ProfileIncomplete = false
}

// UserCompact is the trimmed author representation embedded in feed items.
type UserCompact struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// ToCompact converts a User to its compact representation.
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName}
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=2,max=20"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	City        string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode     string `json:"zip_code,omitempty" validate:"omitempty,max=12"`
}

// UpdateUserRequest defines the request body for profile updates
type UpdateUserRequest struct {
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	City        string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode     string `json:"zip_code,omitempty" validate:"omitempty,max=12"`
	AboutMe     string `json:"about_me,omitempty" validate:"omitempty,max=2000"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
