package entity

import (
	"time"

	"github.com/google/uuid"
)

// Form is a facility's questionnaire definition. Soft-deleted via IsActive.
type Form struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	FacilityID  uuid.UUID `gorm:"type:uuid;not null;index" json:"facility_id"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Questions []Question `gorm:"foreignKey:FormID" json:"questions,omitempty"`
}

func (Form) TableName() string {
	return "forms"
}
