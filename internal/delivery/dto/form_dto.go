package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type QuestionRequest struct {
	QuestionText string   `json:"question_text" validate:"required"`
	QuestionType string   `json:"question_type" validate:"required,oneof=text long_text multiple_choice yes_no rating scale"`
	Options      []string `json:"options"`
	Required     bool     `json:"required"`
}

// FormRequest is shared by create and update; an update replaces every question.
type FormRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description"`
	Questions   []QuestionRequest `json:"questions" validate:"min=1,dive"`
}

// Response DTOs

type QuestionResponse struct {
	ID           uuid.UUID   `json:"id"`
	QuestionText string      `json:"question_text"`
	QuestionType string      `json:"question_type"`
	Options      []string    `json:"options,omitempty"`
	Required     bool        `json:"required"`
	OrderIndex   int         `json:"order_index"`
	DefaultValue interface{} `json:"default_value"`
}

type FormResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	FacilityID  uuid.UUID          `json:"facility_id"`
	CreatedBy   uuid.UUID          `json:"created_by"`
	IsActive    bool               `json:"is_active"`
	Questions   []QuestionResponse `json:"questions"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type FormListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FormListResponse struct {
	Forms []FormListItem `json:"forms"`
	Total int            `json:"total"`
}
