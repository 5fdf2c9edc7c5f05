package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusDraft     SubmissionStatus = "draft"
)

// FormSubmission is one completed run of a form by a user.
type FormSubmission struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FormID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"form_id"`
	SubmittedBy uuid.UUID        `gorm:"type:uuid;not null" json:"submitted_by"`
	SubmittedAt time.Time        `gorm:"not null" json:"submitted_at"`
	Status      SubmissionStatus `gorm:"type:varchar(20);not null;default:completed" json:"status"`

	// Relationships
	Form    *Form        `gorm:"foreignKey:FormID" json:"form,omitempty"`
	Answers []Answer     `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
	Author  *UserProfile `gorm:"foreignKey:SubmittedBy;references:UserID" json:"author,omitempty"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// Answer stores one question's value as text. QuestionID becomes nil when the
// question is later removed from the form.
type Answer struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SubmissionID uuid.UUID  `gorm:"type:uuid;not null;index" json:"submission_id"`
	QuestionID   *uuid.UUID `gorm:"type:uuid;index" json:"question_id,omitempty"`
	AnswerValue  string     `gorm:"type:text;not null;default:''" json:"answer_value"`
}

func (Answer) TableName() string {
	return "answers"
}
