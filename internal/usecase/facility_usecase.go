package usecase

import (
	"context"
	"errors"

	"lenglogs/internal/converter"
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"
	"lenglogs/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFacilityNotFound     = errors.New("facility not found")
	ErrStaffNotFound        = errors.New("no staff account found for this email")
	ErrNotStaff             = errors.New("only staff accounts can be assigned")
	ErrStaffAlreadyAssigned = errors.New("staff member already belongs to another facility")
)

type FacilityUsecase interface {
	GetFacility(ctx context.Context, caller *entity.UserProfile) (*dto.FacilityResponse, error)
	ListStaff(ctx context.Context, caller *entity.UserProfile) (*dto.StaffListResponse, error)
	AssignStaff(ctx context.Context, caller *entity.UserProfile, req *dto.AssignStaffRequest) (*dto.UserProfileResponse, error)
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
	profileRepo  repository.UserProfileRepository
	auditService service.AuditService
}

func NewFacilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	facilityRepo repository.FacilityRepository,
	profileRepo repository.UserProfileRepository,
	auditService service.AuditService,
) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		facilityRepo: facilityRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *facilityUsecase) GetFacility(ctx context.Context, caller *entity.UserProfile) (*dto.FacilityResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility: %+v", err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) ListStaff(ctx context.Context, caller *entity.UserProfile) (*dto.StaffListResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}

	profiles, err := u.profileRepo.FindByFacility(u.db.WithContext(ctx), facilityID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}

	return &dto.StaffListResponse{
		Staff: converter.ProfilesToResponses(profiles),
		Total: len(profiles),
	}, nil
}

// AssignStaff attaches a signed-up staff account to the manager's facility.
// Assigning someone already in the facility is a no-op.
func (u *facilityUsecase) AssignStaff(ctx context.Context, caller *entity.UserProfile, req *dto.AssignStaffRequest) (*dto.UserProfileResponse, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.profileRepo.FindByEmail(tx, normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find staff profile: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	if staff.Role != entity.RoleStaff {
		return nil, ErrNotStaff
	}
	if staff.BelongsTo(facilityID) {
		return converter.ProfileToResponse(staff), nil
	}
	if staff.FacilityID != nil {
		return nil, ErrStaffAlreadyAssigned
	}

	if _, err := u.profileRepo.AssignFacility(tx, staff.UserID, facilityID); err != nil {
		u.log.Warnf("Failed to assign staff: %+v", err)
		return nil, err
	}
	staff.FacilityID = &facilityID

	if err := u.auditService.LogUpdate(ctx, tx, service.AuditEntry{
		UserID:     caller.UserID,
		FacilityID: &facilityID,
		Action:     entity.AuditActionStaffAssign,
		Entity:     "user_profile",
		EntityID:   staff.UserID.String(),
	}, entity.JSON{"facility_id": nil}, entity.JSON{"facility_id": facilityID.String()}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(staff), nil
}
