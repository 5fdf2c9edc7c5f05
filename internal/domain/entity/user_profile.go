package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a profile.
type Role string

const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// UserProfile carries identity, role and facility membership of a user.
// FacilityID is nil for staff who have not been assigned yet.
type UserProfile struct {
	UserID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email      string     `gorm:"type:varchar(255);not null;index" json:"email"`
	FirstName  string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Role       Role       `gorm:"type:varchar(20);not null" json:"role"`
	FacilityID *uuid.UUID `gorm:"type:uuid;index" json:"facility_id,omitempty"`
	Phone      string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Facility *Facility `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (p *UserProfile) IsManager() bool {
	return p.Role == RoleManager
}

func (p *UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// BelongsTo reports whether the profile is assigned to the given facility.
func (p *UserProfile) BelongsTo(facilityID uuid.UUID) bool {
	return p.FacilityID != nil && *p.FacilityID == facilityID
}
