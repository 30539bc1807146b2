// Package model provides domain models and DTOs for the auth module.
package model

import (
	"errors"
	"time"

	"github.com/festy23/veterans_league/internal/session"
)

var (
	// ErrUnauthenticated indicates a missing or invalid identity token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidEmail indicates an empty admin email.
	ErrInvalidEmail = errors.New("invalid email")
)

// Admin is an allowlisted administrator email.
type Admin struct {
	Email     string    `gorm:"primaryKey;column:email;type:varchar(255)" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Admin) TableName() string {
	return "admins"
}

// SignInRequest carries the token issued by the identity provider.
type SignInRequest struct {
	Token string `json:"token" binding:"required"`
}

// SignInResult is a freshly issued session.
type SignInResult struct {
	Token     string          `json:"-"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   session.Session `json:"session"`
}
