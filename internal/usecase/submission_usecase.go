package usecase

import (
	"context"
	"errors"
	"time"

	"lenglogs/internal/converter"
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"
	"lenglogs/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

type SubmissionUsecase interface {
	SubmitForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID, req *dto.SubmitFormRequest) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.SubmissionListResponse, error)
	GetSubmission(ctx context.Context, caller *entity.UserProfile, submissionID uuid.UUID) (*dto.SubmissionResponse, error)
	GetFormSummary(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.FormSummaryResponse, error)
}

type submissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	formRepo       repository.FormRepository
	submissionRepo repository.SubmissionRepository
	answerRepo     repository.AnswerRepository
	auditService   service.AuditService
	now            func() time.Time
}

func NewSubmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	formRepo repository.FormRepository,
	submissionRepo repository.SubmissionRepository,
	answerRepo repository.AnswerRepository,
	auditService service.AuditService,
) SubmissionUsecase {
	return &submissionUsecase{
		db:             db,
		log:            log,
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
		auditService:   auditService,
		now:            time.Now,
	}
}

// SubmitForm validates every answer against its question and, when all pass,
// stores the submission and one answer per question in a single transaction.
func (u *submissionUsecase) SubmitForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID, req *dto.SubmitFormRequest) (*dto.SubmissionResponse, error) {
	form, err := loadFacilityForm(u.db.WithContext(ctx), u.log, u.formRepo, caller, formID)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	values := make([]string, len(form.Questions))
	for i := range form.Questions {
		q := &form.Questions[i]
		raw, ok := req.Answers[q.ID]
		if !ok {
			raw = q.QuestionType.DefaultValue()
		}
		if msg := q.ValidateAnswer(raw); msg != "" {
			fields[q.ID.String()] = msg
			continue
		}
		values[i] = entity.CoerceAnswer(raw)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	submission := &entity.FormSubmission{
		FormID:      form.ID,
		SubmittedBy: caller.UserID,
		SubmittedAt: u.now(),
		Status:      entity.SubmissionStatusCompleted,
	}
	if err := u.submissionRepo.Create(tx, submission); err != nil {
		u.log.Warnf("Failed to create submission: %+v", err)
		return nil, err
	}

	answers := make([]entity.Answer, len(form.Questions))
	for i := range form.Questions {
		questionID := form.Questions[i].ID
		answers[i] = entity.Answer{
			SubmissionID: submission.ID,
			QuestionID:   &questionID,
			AnswerValue:  values[i],
		}
	}
	if err := u.answerRepo.CreateBatch(tx, answers); err != nil {
		u.log.Warnf("Failed to create answers: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &form.FacilityID,
		Action:     entity.AuditActionFormSubmit,
		Entity:     "form_submission",
		EntityID:   submission.ID.String(),
	}, entity.JSON{"form_id": form.ID.String(), "answers": len(answers)}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	submission.Form = form
	submission.Answers = answers
	return converter.SubmissionToResponse(submission), nil
}

func (u *submissionUsecase) ListSubmissions(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.SubmissionListResponse, error) {
	db := u.db.WithContext(ctx)
	form, err := loadFacilityForm(db, u.log, u.formRepo, caller, formID)
	if err != nil {
		return nil, err
	}

	submissions, err := u.submissionRepo.FindByFormID(db, form.ID)
	if err != nil {
		u.log.Warnf("Failed to find submissions: %+v", err)
		return nil, err
	}

	return &dto.SubmissionListResponse{
		Submissions: converter.SubmissionsToResponses(submissions),
		Total:       len(submissions),
	}, nil
}

func (u *submissionUsecase) GetSubmission(ctx context.Context, caller *entity.UserProfile, submissionID uuid.UUID) (*dto.SubmissionResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	submission, err := u.submissionRepo.FindByID(u.db.WithContext(ctx), submissionID)
	if err != nil {
		u.log.Warnf("Failed to find submission: %+v", err)
		return nil, err
	}
	if submission == nil || submission.Form == nil {
		return nil, ErrSubmissionNotFound
	}
	if submission.Form.FacilityID != facilityID {
		return nil, ErrFormAccessDenied
	}

	return converter.SubmissionToResponse(submission), nil
}

// GetFormSummary counts non-empty answers per question and averages the
// numeric ones, rounded to two decimals.
func (u *submissionUsecase) GetFormSummary(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.FormSummaryResponse, error) {
	db := u.db.WithContext(ctx)
	form, err := loadFacilityForm(db, u.log, u.formRepo, caller, formID)
	if err != nil {
		return nil, err
	}

	submissions, err := u.submissionRepo.FindByFormID(db, form.ID)
	if err != nil {
		u.log.Warnf("Failed to find submissions: %+v", err)
		return nil, err
	}

	answers, err := u.answerRepo.FindByFormID(db, form.ID)
	if err != nil {
		u.log.Warnf("Failed to find answers: %+v", err)
		return nil, err
	}

	return &dto.FormSummaryResponse{
		FormID:           form.ID,
		TotalSubmissions: len(submissions),
		Questions:        summarizeAnswers(form.Questions, answers),
	}, nil
}

func summarizeAnswers(questions []entity.Question, answers []entity.Answer) []dto.QuestionSummary {
	type tally struct {
		count   int
		numeric int
		sum     decimal.Decimal
	}
	tallies := make(map[uuid.UUID]*tally, len(questions))
	for _, q := range questions {
		tallies[q.ID] = &tally{sum: decimal.Zero}
	}

	for _, a := range answers {
		if a.QuestionID == nil || a.AnswerValue == "" {
			continue
		}
		t, ok := tallies[*a.QuestionID]
		if !ok {
			continue
		}
		t.count++
		if v, err := decimal.NewFromString(a.AnswerValue); err == nil {
			t.sum = t.sum.Add(v)
			t.numeric++
		}
	}

	summaries := make([]dto.QuestionSummary, len(questions))
	for i, q := range questions {
		t := tallies[q.ID]
		summaries[i] = dto.QuestionSummary{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
			QuestionType: string(q.QuestionType),
			AnswerCount:  t.count,
		}
		if q.QuestionType.IsNumeric() && t.numeric > 0 {
			avg := t.sum.Div(decimal.NewFromInt(int64(t.numeric))).Round(2)
			summaries[i].Average = &avg
		}
	}
	return summaries
}
