package repository

import (
	"regexp"
	"testing"

	"lenglogs/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_DeleteByFormID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuestionRepository()

	formID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "questions" WHERE form_id = $1`)).
		WithArgs(formID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.DeleteByFormID(db, formID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_CreateBatchEmptyIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuestionRepository()

	require.NoError(t, repo.CreateBatch(db, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_CreateBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuestionRepository()

	formID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "questions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()).AddRow(uuid.New().String()))

	questions := []entity.Question{
		{FormID: formID, QuestionText: "Mood today?", QuestionType: entity.QuestionTypeRating, OrderIndex: 0},
		{FormID: formID, QuestionText: "Lunch", QuestionType: entity.QuestionTypeMultipleChoice, Options: entity.StringList{"Ate all", "Ate some"}, OrderIndex: 1},
	}
	require.NoError(t, repo.CreateBatch(db, questions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepository_Deactivate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository()

	mock.ExpectExec(`UPDATE "forms" SET "is_active"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Deactivate(db, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
