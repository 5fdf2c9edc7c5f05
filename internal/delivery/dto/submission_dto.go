package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitFormRequest carries raw answer values (string or number) keyed by question id.
// Questions without an entry take their type's default.
type SubmitFormRequest struct {
	Answers map[uuid.UUID]interface{} `json:"answers"`
}

type AnswerResponse struct {
	QuestionID  *uuid.UUID `json:"question_id,omitempty"`
	AnswerValue string     `json:"answer_value"`
}

type SubmissionResponse struct {
	ID              uuid.UUID        `json:"id"`
	FormID          uuid.UUID        `json:"form_id"`
	FormTitle       string           `json:"form_title,omitempty"`
	SubmittedBy     uuid.UUID        `json:"submitted_by"`
	SubmittedByName string           `json:"submitted_by_name,omitempty"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	Status          string           `json:"status"`
	Answers         []AnswerResponse `json:"answers,omitempty"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
}

type QuestionSummary struct {
	QuestionID   uuid.UUID        `json:"question_id"`
	QuestionText string           `json:"question_text"`
	QuestionType string           `json:"question_type"`
	AnswerCount  int              `json:"answer_count"`
	Average      *decimal.Decimal `json:"average,omitempty"`
}

type FormSummaryResponse struct {
	FormID           uuid.UUID         `json:"form_id"`
	TotalSubmissions int               `json:"total_submissions"`
	Questions        []QuestionSummary `json:"questions"`
}
