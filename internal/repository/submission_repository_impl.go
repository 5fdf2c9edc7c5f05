package repository

import (
	"errors"
	"time"

	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type submissionRepository struct{}

func NewSubmissionRepository() domainRepo.SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(db *gorm.DB, submission *entity.FormSubmission) error {
	return db.Omit("Form", "Answers", "Author").Create(submission).Error
}

func (r *submissionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FormSubmission, error) {
	var submission entity.FormSubmission
	err := db.Preload("Form").Preload("Answers", answersInQuestionOrder).Preload("Author").
		Where("id = ?", id).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.FormSubmission, error) {
	var submissions []entity.FormSubmission
	err := db.Preload("Author").
		Where("form_id = ?", formID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountByFacilitySince(db *gorm.DB, facilityID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.FormSubmission{}).
		Joins("JOIN forms ON forms.id = form_submissions.form_id").
		Where("forms.facility_id = ? AND form_submissions.submitted_at >= ?", facilityID, since).
		Count(&count).Error
	return count, err
}

type answerRepository struct{}

func NewAnswerRepository() domainRepo.AnswerRepository {
	return &answerRepository{}
}

func (r *answerRepository) CreateBatch(db *gorm.DB, answers []entity.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return db.Create(&answers).Error
}

func (r *answerRepository) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Answer, error) {
	var answers []entity.Answer
	err := db.Joins("JOIN form_submissions ON form_submissions.id = answers.submission_id").
		Where("form_submissions.form_id = ?", formID).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// answersInQuestionOrder sorts answers like the form shows its questions.
// Answers whose question was deleted come last.
func answersInQuestionOrder(db *gorm.DB) *gorm.DB {
	return db.Select("answers.*").
		Joins("LEFT JOIN questions ON questions.id = answers.question_id").
		Order("questions.order_index ASC NULLS LAST").
		Order("answers.id")
}
