package repository

import (
	"regexp"
	"testing"
	"time"

	"lenglogs/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patientColumns = []string{"id", "facility_id", "first_name", "last_name", "is_active", "created_by", "created_at", "updated_at"}

func TestPatientRepository_CreateReturnsID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	newID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "patients"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

	patient := &entity.Patient{
		FacilityID: uuid.New(),
		FirstName:  "John",
		LastName:   "Doe",
		IsActive:   true,
		CreatedBy:  uuid.New(),
	}
	require.NoError(t, repo.Create(db, patient))

	assert.Equal(t, newID, patient.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindActiveByFacility(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	facilityID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(patientColumns).
		AddRow(uuid.New().String(), facilityID.String(), "Ann", "Adams", true, uuid.New().String(), now, now).
		AddRow(uuid.New().String(), facilityID.String(), "John", "Doe", true, uuid.New().String(), now, now)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE facility_id = \$1 AND is_active = \$2 ORDER BY last_name ASC`).
		WithArgs(facilityID, true).
		WillReturnRows(rows)

	patients, err := repo.FindActiveByFacility(db, facilityID)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	for _, p := range patients {
		assert.Equal(t, facilityID, p.FacilityID)
		assert.True(t, p.IsActive)
	}
	assert.Equal(t, "Adams", patients[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindByIDIgnoresActiveFlag(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(patientColumns).
		AddRow(id.String(), uuid.New().String(), "John", "Doe", false, uuid.New().String(), now, now)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1 ORDER BY`).
		WillReturnRows(rows)

	patient, err := repo.FindByID(db, id)
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.False(t, patient.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`SELECT \* FROM "patients"`).
		WillReturnRows(sqlmock.NewRows(patientColumns))

	patient, err := repo.FindByID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestPatientRepository_SetActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectExec(`UPDATE "patients" SET "is_active"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.SetActive(db, uuid.New(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_CountActiveByFacility(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients" WHERE facility_id = \$1 AND is_active = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountActiveByFacility(db, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
