package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleItem struct {
	Text string `json:"question_text" validate:"required"`
}

type sampleRequest struct {
	FirstName string       `json:"first_name" validate:"required"`
	Email     string       `json:"email" validate:"required,email"`
	Phone     string       `json:"phone" validate:"omitempty,phone"`
	Gender    string       `json:"gender" validate:"omitempty,oneof=male female"`
	Birth     string       `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Items     []sampleItem `json:"questions" validate:"min=1,dive"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{
		Email:  "not-an-email",
		Phone:  "call me",
		Gender: "robot",
		Birth:  "03/04/1950",
		Items:  []sampleItem{{Text: ""}},
	})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "First name is required", errs["first_name"])
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])
	assert.Equal(t, "Gender must be one of: male, female", errs["gender"])
	assert.Equal(t, "Date of birth must be a date in YYYY-MM-DD format", errs["date_of_birth"])
	assert.Equal(t, "Question text is required", errs["questions[0].question_text"])
}

func TestValidate_EmptyQuestionList(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{FirstName: "Ann", Email: "ann@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Questions must contain at least 1 item(s)", v.FormatValidationErrors(err)["questions"])
}

func TestValidate_PhoneFormats(t *testing.T) {
	v := NewValidator()

	for _, phone := range []string{"+1 (555) 010-0200", "5550100", "555-0100"} {
		req := &sampleRequest{FirstName: "Ann", Email: "ann@example.com", Phone: phone, Items: []sampleItem{{Text: "q"}}}
		assert.NoError(t, v.Validate(req), phone)
	}
}
