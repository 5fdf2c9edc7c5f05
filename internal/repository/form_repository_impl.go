package repository

import (
	"errors"

	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type formRepository struct{}

func NewFormRepository() domainRepo.FormRepository {
	return &formRepository{}
}

func (r *formRepository) Create(db *gorm.DB, form *entity.Form) error {
	return db.Omit("Questions").Create(form).Error
}

// FindActiveByID loads an active form with its questions in display order.
func (r *formRepository) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Form, error) {
	var form entity.Form
	err := db.Scopes(ActiveOnly).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("id = ?", id).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Form, error) {
	var forms []entity.Form
	err := db.Scopes(ByFacility(facilityID), ActiveOnly).
		Order("created_at DESC").
		Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepository) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Form{}).
		Scopes(ByFacility(facilityID), ActiveOnly).
		Count(&count).Error
	return count, err
}

func (r *formRepository) UpdateDetails(db *gorm.DB, id uuid.UUID, title, description string) (int64, error) {
	result := db.Model(&entity.Form{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		})
	return result.RowsAffected, result.Error
}

func (r *formRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Form{}).
		Where("id = ?", id).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

type questionRepository struct{}

func NewQuestionRepository() domainRepo.QuestionRepository {
	return &questionRepository{}
}

func (r *questionRepository) CreateBatch(db *gorm.DB, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return db.Create(&questions).Error
}

func (r *questionRepository) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Question, error) {
	var questions []entity.Question
	err := db.Where("form_id = ?", formID).Order("order_index ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DeleteByFormID(db *gorm.DB, formID uuid.UUID) (int64, error) {
	result := db.Where("form_id = ?", formID).Delete(&entity.Question{})
	return result.RowsAffected, result.Error
}
