package repository

import (
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(db *gorm.DB, form *entity.Form) error
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Form, error)
	FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Form, error)
	CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error)
	UpdateDetails(db *gorm.DB, id uuid.UUID, title, description string) (int64, error)
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}

type QuestionRepository interface {
	CreateBatch(db *gorm.DB, questions []entity.Question) error
	FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Question, error)
	DeleteByFormID(db *gorm.DB, formID uuid.UUID) (int64, error)
}
