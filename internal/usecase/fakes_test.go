package usecase

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"lenglogs/internal/domain/entity"
	"lenglogs/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func managerOf(facilityID uuid.UUID) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:     uuid.New(),
		FirstName:  "Mia",
		LastName:   "Manager",
		Role:       entity.RoleManager,
		FacilityID: &facilityID,
		IsActive:   true,
	}
}

func staffOf(facilityID *uuid.UUID) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:     uuid.New(),
		FirstName:  "Sam",
		LastName:   "Staff",
		Role:       entity.RoleStaff,
		FacilityID: facilityID,
		IsActive:   true,
	}
}

// users

type fakeUserRepo struct {
	byID   map[uuid.UUID]*entity.User
	create error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if r.create != nil {
		return r.create
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.byID[id], nil
}

// profiles

type fakeProfileRepo struct {
	byID map[uuid.UUID]*entity.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: map[uuid.UUID]*entity.UserProfile{}}
}

func (r *fakeProfileRepo) Create(db *gorm.DB, profile *entity.UserProfile) error {
	r.byID[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	return r.byID[userID], nil
}

func (r *fakeProfileRepo) FindByEmail(db *gorm.DB, email string) (*entity.UserProfile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.UserProfile, error) {
	var out []entity.UserProfile
	for _, p := range r.byID {
		if p.BelongsTo(facilityID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID, role entity.Role) (int64, error) {
	var n int64
	for _, p := range r.byID {
		if p.BelongsTo(facilityID) && p.IsActive && p.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeProfileRepo) AssignFacility(db *gorm.DB, userID, facilityID uuid.UUID) (int64, error) {
	p, ok := r.byID[userID]
	if !ok {
		return 0, nil
	}
	p.FacilityID = &facilityID
	return 1, nil
}

// facilities

type fakeFacilityRepo struct {
	created []*entity.Facility
}

func (r *fakeFacilityRepo) Create(db *gorm.DB, facility *entity.Facility) error {
	facility.ID = uuid.New()
	r.created = append(r.created, facility)
	return nil
}

func (r *fakeFacilityRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Facility, error) {
	for _, f := range r.created {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

// patients

type fakePatientRepo struct {
	byID map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo(patients ...entity.Patient) *fakePatientRepo {
	r := &fakePatientRepo{byID: map[uuid.UUID]*entity.Patient{}}
	for i := range patients {
		p := patients[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.byID[p.ID] = &p
	}
	return r
}

func (r *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	patient.ID = uuid.New()
	stored := *patient
	r.byID[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Patient, error) {
	var out []entity.Patient
	for _, p := range r.byID {
		if p.FacilityID == facilityID && p.IsActive {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (r *fakePatientRepo) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error) {
	list, _ := r.FindActiveByFacility(db, facilityID)
	return int64(len(list)), nil
}

func (r *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	stored := *patient
	r.byID[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepo) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.IsActive = active
	return 1, nil
}

// forms and questions

type fakeFormRepo struct {
	byID      map[uuid.UUID]*entity.Form
	questions *fakeQuestionRepo
}

func newFakeFormRepo(questions *fakeQuestionRepo) *fakeFormRepo {
	return &fakeFormRepo{byID: map[uuid.UUID]*entity.Form{}, questions: questions}
}

func (r *fakeFormRepo) add(form entity.Form) *entity.Form {
	if form.ID == uuid.Nil {
		form.ID = uuid.New()
	}
	for i := range form.Questions {
		form.Questions[i].FormID = form.ID
		if form.Questions[i].ID == uuid.Nil {
			form.Questions[i].ID = uuid.New()
		}
	}
	r.questions.byForm[form.ID] = append([]entity.Question(nil), form.Questions...)
	form.Questions = nil
	r.byID[form.ID] = &form
	return &form
}

func (r *fakeFormRepo) Create(db *gorm.DB, form *entity.Form) error {
	form.ID = uuid.New()
	stored := *form
	r.byID[form.ID] = &stored
	return nil
}

func (r *fakeFormRepo) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Form, error) {
	f, ok := r.byID[id]
	if !ok || !f.IsActive {
		return nil, nil
	}
	cp := *f
	cp.Questions, _ = r.questions.FindByFormID(db, id)
	return &cp, nil
}

func (r *fakeFormRepo) FindActiveByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.Form, error) {
	var out []entity.Form
	for _, f := range r.byID {
		if f.FacilityID == facilityID && f.IsActive {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFormRepo) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID) (int64, error) {
	list, _ := r.FindActiveByFacility(db, facilityID)
	return int64(len(list)), nil
}

func (r *fakeFormRepo) UpdateDetails(db *gorm.DB, id uuid.UUID, title, description string) (int64, error) {
	f, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	f.Title, f.Description = title, description
	return 1, nil
}

func (r *fakeFormRepo) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	f, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	f.IsActive = false
	return 1, nil
}

type fakeQuestionRepo struct {
	byForm map[uuid.UUID][]entity.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{byForm: map[uuid.UUID][]entity.Question{}}
}

func (r *fakeQuestionRepo) CreateBatch(db *gorm.DB, questions []entity.Question) error {
	for i := range questions {
		questions[i].ID = uuid.New()
		r.byForm[questions[i].FormID] = append(r.byForm[questions[i].FormID], questions[i])
	}
	return nil
}

func (r *fakeQuestionRepo) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Question, error) {
	out := append([]entity.Question(nil), r.byForm[formID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *fakeQuestionRepo) DeleteByFormID(db *gorm.DB, formID uuid.UUID) (int64, error) {
	n := len(r.byForm[formID])
	delete(r.byForm, formID)
	return int64(n), nil
}

// submissions and answers

type fakeSubmissionRepo struct {
	created []*entity.FormSubmission
}

func (r *fakeSubmissionRepo) Create(db *gorm.DB, submission *entity.FormSubmission) error {
	submission.ID = uuid.New()
	r.created = append(r.created, submission)
	return nil
}

func (r *fakeSubmissionRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FormSubmission, error) {
	for _, s := range r.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.FormSubmission, error) {
	var out []entity.FormSubmission
	for _, s := range r.created {
		if s.FormID == formID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) CountByFacilitySince(db *gorm.DB, facilityID uuid.UUID, since time.Time) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeAnswerRepo struct {
	created []entity.Answer
}

func (r *fakeAnswerRepo) CreateBatch(db *gorm.DB, answers []entity.Answer) error {
	r.created = append(r.created, answers...)
	return nil
}

func (r *fakeAnswerRepo) FindByFormID(db *gorm.DB, formID uuid.UUID) ([]entity.Answer, error) {
	return r.created, nil
}

// audit

type fakeAuditService struct {
	entries []service.AuditEntry
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, entry service.AuditEntry, newValue interface{}) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, entry service.AuditEntry, oldValue, newValue interface{}) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, entry service.AuditEntry, oldValue interface{}) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeAuditService) LogEvent(ctx context.Context, tx *gorm.DB, entry service.AuditEntry, details entity.JSON) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeAuditService) actions() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Action
	}
	return out
}
