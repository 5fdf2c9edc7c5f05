package repository

import (
	"time"

	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(db *gorm.DB, submission *entity.FormSubmission) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FormSubmission, error)
	FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.FormSubmission, error)
	CountByFacilitySince(db *gorm.DB, facilityID uuid.UUID, since time.Time) (int64, error)
}

type AnswerRepository interface {
	CreateBatch(db *gorm.DB, answers []entity.Answer) error
	FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Answer, error)
}
