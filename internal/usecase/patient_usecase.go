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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientAccessDenied = errors.New("access denied: patient not in your facility")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidSaveMode     = errors.New("invalid save mode")
)

// SaveMode selects between inserting a new patient and editing an existing one.
type SaveMode string

const (
	SaveModeCreate SaveMode = "create"
	SaveModeEdit   SaveMode = "edit"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, caller *entity.UserProfile, query string) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) (*dto.PatientResponse, error)
	SavePatient(ctx context.Context, caller *entity.UserProfile, mode SaveMode, patientID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeactivatePatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) error
	ReactivatePatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) error
	ExportPatients(ctx context.Context, caller *entity.UserProfile) ([]byte, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	exporter     service.RosterExporter
	now          func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	exporter service.RosterExporter,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		exporter:     exporter,
		now:          time.Now,
	}
}

// ListPatients returns the active patients of the caller's facility by last
// name, narrowed by the optional search query.
func (u *patientUsecase) ListPatients(ctx context.Context, caller *entity.UserProfile, query string) (*dto.PatientListResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindActiveByFacility(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	patients = entity.FilterPatients(patients, query)

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients, u.now()),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.findInFacility(u.db.WithContext(ctx), caller, patientID)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient, u.now()), nil
}

// SavePatient is the single write path for the create and edit forms.
func (u *patientUsecase) SavePatient(ctx context.Context, caller *entity.UserProfile, mode SaveMode, patientID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var patient *entity.Patient
	var before entity.Patient

	switch mode {
	case SaveModeCreate:
		patient = &entity.Patient{
			FacilityID: facilityID,
			CreatedBy:  caller.UserID,
			IsActive:   true,
		}
	case SaveModeEdit:
		patient, err = u.findInFacility(tx, caller, patientID)
		if err != nil {
			return nil, err
		}
		before = *patient
	default:
		return nil, ErrInvalidSaveMode
	}

	if err := converter.ApplyPatientRequest(patient, req); err != nil {
		return nil, ErrInvalidDateFormat
	}

	entry := service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Entity:     "patient",
	}

	if mode == SaveModeCreate {
		if err := u.patientRepo.Create(tx, patient); err != nil {
			if isForeignKeyError(err, "facility") {
				return nil, ErrNoFacility
			}
			u.log.Warnf("Failed to create patient: %+v", err)
			return nil, err
		}
		entry.Action = entity.AuditActionPatientCreate
		entry.EntityID = patient.ID.String()
		if err := u.auditService.LogCreate(ctx, tx, entry, patient); err != nil {
			return nil, err
		}
	} else {
		if err := u.patientRepo.Update(tx, patient); err != nil {
			u.log.Warnf("Failed to update patient: %+v", err)
			return nil, err
		}
		entry.Action = entity.AuditActionPatientUpdate
		entry.EntityID = patient.ID.String()
		if err := u.auditService.LogUpdate(ctx, tx, entry, before, patient); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient, u.now()), nil
}

func (u *patientUsecase) DeactivatePatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) error {
	return u.setActive(ctx, caller, patientID, false)
}

func (u *patientUsecase) ReactivatePatient(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID) error {
	return u.setActive(ctx, caller, patientID, true)
}

func (u *patientUsecase) setActive(ctx context.Context, caller *entity.UserProfile, patientID uuid.UUID, active bool) error {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findInFacility(tx, caller, patientID)
	if err != nil {
		return err
	}

	if _, err := u.patientRepo.SetActive(tx, patient.ID, active); err != nil {
		u.log.Warnf("Failed to update patient status: %+v", err)
		return err
	}

	action := entity.AuditActionPatientDeactivate
	if active {
		action = entity.AuditActionPatientReactivate
	}
	if err := u.auditService.LogUpdate(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     action,
		Entity:     "patient",
		EntityID:   patient.ID.String(),
	}, entity.JSON{"is_active": patient.IsActive}, entity.JSON{"is_active": active}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *patientUsecase) ExportPatients(ctx context.Context, caller *entity.UserProfile) ([]byte, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	patients, err := u.patientRepo.FindActiveByFacility(db, facilityID)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	data, err := u.exporter.Export(patients, u.now())
	if err != nil {
		u.log.Warnf("Failed to export patients: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogEvent(ctx, db, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     entity.AuditActionPatientExport,
	}, entity.JSON{"count": len(patients)})

	return data, nil
}

// findInFacility loads a patient regardless of is_active and checks it
// belongs to the caller's facility.
func (u *patientUsecase) findInFacility(db *gorm.DB, caller *entity.UserProfile, patientID uuid.UUID) (*entity.Patient, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.FacilityID != facilityID {
		return nil, ErrPatientAccessDenied
	}
	return patient, nil
}
