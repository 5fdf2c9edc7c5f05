package repository

import (
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(db *gorm.DB, facility *entity.Facility) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Facility, error)
}
