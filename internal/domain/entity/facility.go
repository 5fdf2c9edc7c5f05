package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Facility is the tenant unit owning patients, staff profiles and forms.
type Facility struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Facility) TableName() string {
	return "facilities"
}

// DefaultFacilityName is the name given to the facility created at manager sign-up.
func DefaultFacilityName(firstName, lastName string) string {
	return fmt.Sprintf("%s %s's Adult Day Care", firstName, lastName)
}
