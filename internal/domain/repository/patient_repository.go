package repository

import (
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Patient, error)
	CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}
