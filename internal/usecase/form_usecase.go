package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lenglogs/internal/converter"
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"
	"lenglogs/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrFormAccessDenied = errors.New("access denied: form not in your facility")
)

type FormUsecase interface {
	ListForms(ctx context.Context, caller *entity.UserProfile) (*dto.FormListResponse, error)
	GetForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.FormResponse, error)
	CreateForm(ctx context.Context, caller *entity.UserProfile, req *dto.FormRequest) (*dto.FormResponse, error)
	UpdateForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID, req *dto.FormRequest) (*dto.FormResponse, error)
	DeleteForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) error
}

type formUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	auditService service.AuditService
}

func NewFormUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	formRepo repository.FormRepository,
	questionRepo repository.QuestionRepository,
	auditService service.AuditService,
) FormUsecase {
	return &formUsecase{
		db:           db,
		log:          log,
		formRepo:     formRepo,
		questionRepo: questionRepo,
		auditService: auditService,
	}
}

func (u *formUsecase) ListForms(ctx context.Context, caller *entity.UserProfile) (*dto.FormListResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	forms, err := u.formRepo.FindActiveByFacility(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find forms: %+v", err)
		return nil, err
	}

	return &dto.FormListResponse{
		Forms: converter.FormsToListItems(forms),
		Total: len(forms),
	}, nil
}

// GetForm loads an active form of the caller's facility with its questions in order.
func (u *formUsecase) GetForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) (*dto.FormResponse, error) {
	form, err := loadFacilityForm(u.db.WithContext(ctx), u.log, u.formRepo, caller, formID)
	if err != nil {
		return nil, err
	}
	return converter.FormToResponse(form), nil
}

func (u *formUsecase) CreateForm(ctx context.Context, caller *entity.UserProfile, req *dto.FormRequest) (*dto.FormResponse, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}
	if err := validateFormRequest(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form := &entity.Form{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		FacilityID:  facilityID,
		CreatedBy:   caller.UserID,
		IsActive:    true,
	}
	if err := u.formRepo.Create(tx, form); err != nil {
		u.log.Warnf("Failed to create form: %+v", err)
		return nil, err
	}

	form.Questions = converter.QuestionsFromRequest(form.ID, req.Questions)
	if err := u.questionRepo.CreateBatch(tx, form.Questions); err != nil {
		u.log.Warnf("Failed to create questions: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     entity.AuditActionFormCreate,
		Entity:     "form",
		EntityID:   form.ID.String(),
	}, entity.JSON{"title": form.Title, "questions": len(form.Questions)}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FormToResponse(form), nil
}

// UpdateForm rewrites the form details and replaces its whole question list.
func (u *formUsecase) UpdateForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID, req *dto.FormRequest) (*dto.FormResponse, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}
	if err := validateFormRequest(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form, err := loadFacilityForm(tx, u.log, u.formRepo, caller, formID)
	if err != nil {
		return nil, err
	}
	oldTitle, oldCount := form.Title, len(form.Questions)

	form.Title = strings.TrimSpace(req.Title)
	form.Description = req.Description
	if _, err := u.formRepo.UpdateDetails(tx, form.ID, form.Title, form.Description); err != nil {
		u.log.Warnf("Failed to update form: %+v", err)
		return nil, err
	}

	if _, err := u.questionRepo.DeleteByFormID(tx, form.ID); err != nil {
		u.log.Warnf("Failed to delete questions: %+v", err)
		return nil, err
	}

	form.Questions = converter.QuestionsFromRequest(form.ID, req.Questions)
	if err := u.questionRepo.CreateBatch(tx, form.Questions); err != nil {
		u.log.Warnf("Failed to create questions: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     entity.AuditActionFormUpdate,
		Entity:     "form",
		EntityID:   form.ID.String(),
	}, entity.JSON{"title": oldTitle, "questions": oldCount}, entity.JSON{"title": form.Title, "questions": len(form.Questions)}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FormToResponse(form), nil
}

func (u *formUsecase) DeleteForm(ctx context.Context, caller *entity.UserProfile, formID uuid.UUID) error {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form, err := loadFacilityForm(tx, u.log, u.formRepo, caller, formID)
	if err != nil {
		return err
	}

	if _, err := u.formRepo.Deactivate(tx, form.ID); err != nil {
		u.log.Warnf("Failed to deactivate form: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     entity.AuditActionFormDelete,
		Entity:     "form",
		EntityID:   form.ID.String(),
	}, entity.JSON{"title": form.Title}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// validateFormRequest covers the rules struct tags cannot express.
func validateFormRequest(req *dto.FormRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "Title is required"
	}
	if len(req.Questions) == 0 {
		fields["questions"] = "Add at least one question"
	}
	for i, q := range req.Questions {
		prefix := fmt.Sprintf("questions[%d].", i)
		if strings.TrimSpace(q.QuestionText) == "" {
			fields[prefix+"question_text"] = "Question text is required"
		}
		qt := entity.QuestionType(q.QuestionType)
		if !qt.IsValid() {
			fields[prefix+"question_type"] = "Question type is invalid"
			continue
		}
		if qt == entity.QuestionTypeMultipleChoice && len(entity.CleanOptions(q.Options)) == 0 {
			fields[prefix+"options"] = "Multiple choice questions need at least one option"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// loadFacilityForm fetches an active form and checks it belongs to the caller's facility.
func loadFacilityForm(db *gorm.DB, log *logrus.Logger, formRepo repository.FormRepository, caller *entity.UserProfile, formID uuid.UUID) (*entity.Form, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	form, err := formRepo.FindActiveByID(db, formID)
	if err != nil {
		log.Warnf("Failed to find form: %+v", err)
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}
	if form.FacilityID != facilityID {
		return nil, ErrFormAccessDenied
	}
	return form, nil
}
