package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is a day care participant, scoped to one facility and soft-deleted via IsActive.
type Patient struct {
	ID                           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FacilityID                   uuid.UUID  `gorm:"type:uuid;not null;index" json:"facility_id"`
	FirstName                    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName                     string     `gorm:"type:varchar(100);not null;index" json:"last_name"`
	DateOfBirth                  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                       string     `gorm:"type:varchar(30)" json:"gender,omitempty"`
	Phone                        string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address                      string     `gorm:"type:text" json:"address,omitempty"`
	MedicalConditions            string     `gorm:"type:text" json:"medical_conditions,omitempty"`
	Allergies                    string     `gorm:"type:text" json:"allergies,omitempty"`
	Medications                  string     `gorm:"type:text" json:"medications,omitempty"`
	DietaryRestrictions          string     `gorm:"type:text" json:"dietary_restrictions,omitempty"`
	EmergencyContactName         string     `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string     `gorm:"type:varchar(30)" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string     `gorm:"type:varchar(30)" json:"emergency_contact_relationship,omitempty"`
	CareLevel                    string     `gorm:"type:varchar(20)" json:"care_level,omitempty"`
	MobilityLevel                string     `gorm:"type:varchar(20)" json:"mobility_level,omitempty"`
	Notes                        string     `gorm:"type:text" json:"notes,omitempty"`
	PhotoURL                     string     `gorm:"column:photo_url;type:text" json:"photo_url,omitempty"`
	IsActive                     bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedBy                    uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt                    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns the completed years between the date of birth and now, or nil when unknown.
func (p *Patient) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	birth := *p.DateOfBirth
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return &age
}

// Matches reports whether the patient satisfies a free-text search: the full
// name or the medical conditions contain the query (case-insensitive), or the
// phone contains it verbatim. An empty query matches everything.
func (p *Patient) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.FullName()), q) {
		return true
	}
	if p.Phone != "" && strings.Contains(p.Phone, query) {
		return true
	}
	return p.MedicalConditions != "" && strings.Contains(strings.ToLower(p.MedicalConditions), q)
}

// Gender values
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

// Care levels
const (
	CareLevelLow    = "low"
	CareLevelMedium = "medium"
	CareLevelHigh   = "high"
)

// Mobility levels
const (
	MobilityIndependent = "independent"
	MobilityWalker      = "walker"
	MobilityWheelchair  = "wheelchair"
	MobilityAssistance  = "assistance"
	MobilityBedbound    = "bedbound"
)
