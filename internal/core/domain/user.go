package domain

import (
	"errors"
	"time"
)

// Role is the coarse permission tier of an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ErrInvalidCredentials covers every login failure — unknown email, wrong
// password, deactivated account — so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
	ErrSelfTarget      = errors.New("operation cannot target your own account")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("email already registered")
)

// User is the persisted credential record.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         Role       `json:"role" bson:"role"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}
