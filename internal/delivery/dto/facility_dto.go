package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignStaffRequest struct {
	Email string `json:"email" validate:"required,max=255,email"`
}

type FacilityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type StaffListResponse struct {
	Staff []UserProfileResponse `json:"staff"`
	Total int                   `json:"total"`
}
