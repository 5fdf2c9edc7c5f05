package converter

import (
	"time"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO, deriving age at now.
func PatientToResponse(patient *entity.Patient, now time.Time) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                           patient.ID,
		FacilityID:                   patient.FacilityID,
		FirstName:                    patient.FirstName,
		LastName:                     patient.LastName,
		FullName:                     patient.FullName(),
		Age:                          patient.Age(now),
		Gender:                       patient.Gender,
		Phone:                        patient.Phone,
		Address:                      patient.Address,
		MedicalConditions:            patient.MedicalConditions,
		Allergies:                    patient.Allergies,
		Medications:                  patient.Medications,
		DietaryRestrictions:          patient.DietaryRestrictions,
		EmergencyContactName:         patient.EmergencyContactName,
		EmergencyContactPhone:        patient.EmergencyContactPhone,
		EmergencyContactRelationship: patient.EmergencyContactRelationship,
		CareLevel:                    patient.CareLevel,
		MobilityLevel:                patient.MobilityLevel,
		Notes:                        patient.Notes,
		PhotoURL:                     patient.PhotoURL,
		IsActive:                     patient.IsActive,
		CreatedBy:                    patient.CreatedBy,
		CreatedAt:                    patient.CreatedAt,
		UpdatedAt:                    patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format(dateLayout)
	}

	return response
}

func PatientsToResponses(patients []entity.Patient, now time.Time) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i], now)
	}
	return responses
}

// ApplyPatientRequest copies the editable fields of a request onto the entity.
// The date of birth must already be validated as YYYY-MM-DD.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) error {
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.Gender = req.Gender
	patient.Phone = req.Phone
	patient.Address = req.Address
	patient.MedicalConditions = req.MedicalConditions
	patient.Allergies = req.Allergies
	patient.Medications = req.Medications
	patient.DietaryRestrictions = req.DietaryRestrictions
	patient.EmergencyContactName = req.EmergencyContactName
	patient.EmergencyContactPhone = req.EmergencyContactPhone
	patient.EmergencyContactRelationship = req.EmergencyContactRelationship
	patient.CareLevel = req.CareLevel
	patient.MobilityLevel = req.MobilityLevel
	patient.Notes = req.Notes
	patient.PhotoURL = req.PhotoURL

	patient.DateOfBirth = nil
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return err
		}
		patient.DateOfBirth = &dob
	}
	return nil
}
