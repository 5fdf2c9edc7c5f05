package converter

import (
	"testing"
	"time"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsFromRequest_OrdersAndCleansOptions(t *testing.T) {
	formID := uuid.New()
	questions := QuestionsFromRequest(formID, []dto.QuestionRequest{
		{QuestionText: "How was lunch?", QuestionType: "multiple_choice", Options: []string{" Good ", "", "Poor"}},
		{QuestionText: "Notes", QuestionType: "text", Options: []string{"ignored"}},
	})

	require.Len(t, questions, 2)
	assert.Equal(t, 0, questions[0].OrderIndex)
	assert.Equal(t, 1, questions[1].OrderIndex)
	assert.Equal(t, entity.StringList{"Good", "Poor"}, questions[0].Options)
	assert.Nil(t, questions[1].Options)
	assert.Equal(t, formID, questions[1].FormID)
}

func TestApplyPatientRequest_ParsesDateOfBirth(t *testing.T) {
	var patient entity.Patient
	require.NoError(t, ApplyPatientRequest(&patient, &dto.PatientRequest{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1950-06-15",
	}))

	require.NotNil(t, patient.DateOfBirth)
	assert.Equal(t, time.June, patient.DateOfBirth.Month())

	resp := PatientToResponse(&patient, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "1950-06-15", resp.DateOfBirth)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 74, *resp.Age)
	assert.Equal(t, "John Doe", resp.FullName)
}

func TestApplyPatientRequest_ClearsDateOfBirth(t *testing.T) {
	dob := time.Now()
	patient := entity.Patient{DateOfBirth: &dob}
	require.NoError(t, ApplyPatientRequest(&patient, &dto.PatientRequest{FirstName: "A", LastName: "B"}))
	assert.Nil(t, patient.DateOfBirth)
}
