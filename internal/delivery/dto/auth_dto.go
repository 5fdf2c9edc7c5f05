package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SignUpRequest struct {
	Email     string `json:"email" validate:"required,max=255,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=manager staff"`
	Phone     string `json:"phone" validate:"omitempty,max=30,phone"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,max=255,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfileResponse struct {
	UserID     uuid.UUID  `json:"user_id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Role       string     `json:"role"`
	FacilityID *uuid.UUID `json:"facility_id,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SessionResponse is the signed-in user together with the profile re-read from the database.
type SessionResponse struct {
	User    UserResponse        `json:"user"`
	Profile UserProfileResponse `json:"user_profile"`
}

type SignUpResponse struct {
	User     UserResponse        `json:"user"`
	Profile  UserProfileResponse `json:"user_profile"`
	Facility *FacilityResponse   `json:"facility,omitempty"`
}
