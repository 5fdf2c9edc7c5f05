package usecase

import (
	"context"
	"testing"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFixture struct {
	usecase   FormUsecase
	mock      sqlmock.Sqlmock
	forms     *fakeFormRepo
	questions *fakeQuestionRepo
	audit     *fakeAuditService
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()
	db, mock := setupMockDB(t)
	questions := newFakeQuestionRepo()
	f := &formFixture{
		mock:      mock,
		forms:     newFakeFormRepo(questions),
		questions: questions,
		audit:     &fakeAuditService{},
	}
	f.usecase = NewFormUsecase(db, quietLogger(), f.forms, f.questions, f.audit)
	return f
}

func TestFormUsecase_ValidationBlocksBeforeDatabase(t *testing.T) {
	facilityID := uuid.New()
	f := newFormFixture(t)

	tests := []struct {
		name  string
		req   dto.FormRequest
		field string
	}{
		{"empty title", dto.FormRequest{Title: "  ", Questions: []dto.QuestionRequest{{QuestionText: "Q", QuestionType: "text"}}}, "title"},
		{"no questions", dto.FormRequest{Title: "Daily"}, "questions"},
		{"blank question", dto.FormRequest{Title: "Daily", Questions: []dto.QuestionRequest{{QuestionText: " ", QuestionType: "text"}}}, "questions[0].question_text"},
		{"unknown type", dto.FormRequest{Title: "Daily", Questions: []dto.QuestionRequest{{QuestionText: "Q", QuestionType: "slider"}}}, "questions[0].question_type"},
		{"choice without options", dto.FormRequest{Title: "Daily", Questions: []dto.QuestionRequest{{QuestionText: "Q", QuestionType: "multiple_choice", Options: []string{" ", ""}}}}, "questions[0].options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.usecase.CreateForm(context.Background(), managerOf(facilityID), &tt.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}

	assert.Empty(t, f.forms.byID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFormUsecase_CreateStoresOrderedQuestions(t *testing.T) {
	facilityID := uuid.New()
	manager := managerOf(facilityID)
	f := newFormFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.usecase.CreateForm(context.Background(), manager, &dto.FormRequest{
		Title: "Daily check-in",
		Questions: []dto.QuestionRequest{
			{QuestionText: "Mood", QuestionType: "rating", Required: true},
			{QuestionText: "Lunch", QuestionType: "multiple_choice", Options: []string{"All", " ", "Some"}},
			{QuestionText: "Pain", QuestionType: "scale", Options: []string{"ignored"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, facilityID, resp.FacilityID)
	assert.Equal(t, manager.UserID, resp.CreatedBy)
	require.Len(t, resp.Questions, 3)
	for i, q := range resp.Questions {
		assert.Equal(t, i, q.OrderIndex)
	}
	assert.Equal(t, []string{"All", "Some"}, resp.Questions[1].Options)
	assert.Nil(t, resp.Questions[2].Options)
	assert.Equal(t, 0, resp.Questions[0].DefaultValue)
	assert.Equal(t, 1, resp.Questions[2].DefaultValue)
	assert.Len(t, f.questions.byForm[resp.ID], 3)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFormUsecase_UpdateReplacesQuestions(t *testing.T) {
	facilityID := uuid.New()
	f := newFormFixture(t)
	form := f.forms.add(entity.Form{
		Title:      "Old",
		FacilityID: facilityID,
		IsActive:   true,
		Questions: []entity.Question{
			{QuestionText: "A", QuestionType: entity.QuestionTypeText, OrderIndex: 0},
			{QuestionText: "B", QuestionType: entity.QuestionTypeText, OrderIndex: 1},
		},
	})
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.usecase.UpdateForm(context.Background(), managerOf(facilityID), form.ID, &dto.FormRequest{
		Title:     "New",
		Questions: []dto.QuestionRequest{{QuestionText: "C", QuestionType: "yes_no"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "New", resp.Title)
	stored := f.questions.byForm[form.ID]
	require.Len(t, stored, 1)
	assert.Equal(t, "C", stored[0].QuestionText)
	assert.Equal(t, 0, stored[0].OrderIndex)
	assert.Equal(t, []string{entity.AuditActionFormUpdate}, f.audit.actions())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFormUsecase_GetFormFacilityMismatch(t *testing.T) {
	f := newFormFixture(t)
	form := f.forms.add(entity.Form{Title: "Theirs", FacilityID: uuid.New(), IsActive: true})
	mine := uuid.New()

	_, err := f.usecase.GetForm(context.Background(), staffOf(&mine), form.ID)
	assert.ErrorIs(t, err, ErrFormAccessDenied)
}

func TestFormUsecase_DeleteIsSoft(t *testing.T) {
	facilityID := uuid.New()
	f := newFormFixture(t)
	form := f.forms.add(entity.Form{Title: "Daily", FacilityID: facilityID, IsActive: true})
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.usecase.DeleteForm(context.Background(), managerOf(facilityID), form.ID))
	require.Contains(t, f.forms.byID, form.ID)
	assert.False(t, f.forms.byID[form.ID].IsActive)

	_, err := f.usecase.GetForm(context.Background(), managerOf(facilityID), form.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFormUsecase_StaffCannotCreate(t *testing.T) {
	facilityID := uuid.New()
	f := newFormFixture(t)

	_, err := f.usecase.CreateForm(context.Background(), staffOf(&facilityID), &dto.FormRequest{
		Title:     "Daily",
		Questions: []dto.QuestionRequest{{QuestionText: "Q", QuestionType: "text"}},
	})
	assert.ErrorIs(t, err, ErrManagerOnly)
}
