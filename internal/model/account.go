package model

import "time"

// Account status values. Deletion is a row removal, not a status.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Account represents an account row in the database.
type Account struct {
	ID          int64
	FullName    string
	Username    string
	Email       string
	Phone       string
	AuthHash    string
	Status      string
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RegisterRequest represents an account registration request.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request. Login accepts a username or an email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest represents an admin edit of an account's profile fields.
type UpdateAccountRequest struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=64"`
}

// UpdateStatusRequest represents an admin block/unblock request.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse represents the authenticated account's own view (no sensitive fields).
type ProfileResponse struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// AccountResponse represents account data safe for the admin API (no credential hash).
type AccountResponse struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
