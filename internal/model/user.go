package model

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"` // Pointer for optional field
	PasswordHash string    `json:"-"`               // Do not expose password hash in JSON responses
	FullName     string    `json:"fullName"`
	Avatar       *string   `json:"avatar,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"fullName" binding:"required"`
	Phone    *string `json:"phone"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOtpRequest is the body of POST /api/auth/send-otp
type SendOtpRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyOtpRequest is the body of POST /api/auth/verify-otp
type VerifyOtpRequest struct {
	Email    string  `json:"email" binding:"required"`
	Code     string  `json:"code" binding:"required,len=6"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"fullName" binding:"required"`
	Phone    *string `json:"phone"`
}

// UserIdentity is the set of claims attached to an authenticated request.
// It mirrors what the token carried at issue time, not the current store state.
type UserIdentity struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
