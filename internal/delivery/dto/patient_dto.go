package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientRequest is shared by create and edit.
type PatientRequest struct {
	FirstName                    string `json:"first_name" validate:"required,max=100"`
	LastName                     string `json:"last_name" validate:"required,max=100"`
	DateOfBirth                  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender                       string `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	Phone                        string `json:"phone" validate:"omitempty,max=30,phone"`
	Address                      string `json:"address"`
	MedicalConditions            string `json:"medical_conditions"`
	Allergies                    string `json:"allergies"`
	Medications                  string `json:"medications"`
	DietaryRestrictions          string `json:"dietary_restrictions"`
	EmergencyContactName         string `json:"emergency_contact_name" validate:"max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" validate:"omitempty,max=30,phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" validate:"omitempty,oneof=spouse child parent sibling friend caregiver other"`
	CareLevel                    string `json:"care_level" validate:"omitempty,oneof=low medium high"`
	MobilityLevel                string `json:"mobility_level" validate:"omitempty,oneof=independent walker wheelchair assistance bedbound"`
	Notes                        string `json:"notes"`
	PhotoURL                     string `json:"photo_url" validate:"omitempty,url"`
}

type PatientResponse struct {
	ID                           uuid.UUID `json:"id"`
	FacilityID                   uuid.UUID `json:"facility_id"`
	FirstName                    string    `json:"first_name"`
	LastName                     string    `json:"last_name"`
	FullName                     string    `json:"full_name"`
	DateOfBirth                  string    `json:"date_of_birth,omitempty"`
	Age                          *int      `json:"age,omitempty"`
	Gender                       string    `json:"gender,omitempty"`
	Phone                        string    `json:"phone,omitempty"`
	Address                      string    `json:"address,omitempty"`
	MedicalConditions            string    `json:"medical_conditions,omitempty"`
	Allergies                    string    `json:"allergies,omitempty"`
	Medications                  string    `json:"medications,omitempty"`
	DietaryRestrictions          string    `json:"dietary_restrictions,omitempty"`
	EmergencyContactName         string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string    `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string    `json:"emergency_contact_relationship,omitempty"`
	CareLevel                    string    `json:"care_level,omitempty"`
	MobilityLevel                string    `json:"mobility_level,omitempty"`
	Notes                        string    `json:"notes,omitempty"`
	PhotoURL                     string    `json:"photo_url,omitempty"`
	IsActive                     bool      `json:"is_active"`
	CreatedBy                    uuid.UUID `json:"created_by"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
