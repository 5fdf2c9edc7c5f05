package repository

import (
	"errors"

	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

// FindByID does not filter on is_active so deactivated records stay reachable.
func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Scopes(ByFacility(facilityID), ActiveOnly).
		Order("last_name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Scopes(ByFacility(facilityID), ActiveOnly).
		Count(&count).Error
	return count, err
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}
