package repository

import (
	"errors"

	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) Create(db *gorm.DB, facility *entity.Facility) error {
	return db.Create(facility).Error
}

func (r *facilityRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Facility, error) {
	var facility entity.Facility
	err := db.Where("id = ?", id).First(&facility).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &facility, nil
}
