package usecase

import (
	"context"
	"time"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, caller *entity.UserProfile) (*dto.DashboardResponse, error)
	GetNavigation(caller *entity.UserProfile) *dto.NavigationResponse
}

type dashboardUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	formRepo       repository.FormRepository
	submissionRepo repository.SubmissionRepository
	patientRepo    repository.PatientRepository
	profileRepo    repository.UserProfileRepository
	now            func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	formRepo repository.FormRepository,
	submissionRepo repository.SubmissionRepository,
	patientRepo repository.PatientRepository,
	profileRepo repository.UserProfileRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:             db,
		log:            log,
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		patientRepo:    patientRepo,
		profileRepo:    profileRepo,
		now:            time.Now,
	}
}

var navigationItems = []dto.NavigationItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Forms", Path: "/forms"},
	{Label: "New Form", Path: "/forms/new", ManagerOnly: true},
	{Label: "Patients", Path: "/patients"},
	{Label: "New Patient", Path: "/patients/new", ManagerOnly: true},
	{Label: "Staff", Path: "/facility/staff", ManagerOnly: true},
	{Label: "Audit Log", Path: "/audit-logs", ManagerOnly: true},
}

// GetNavigation lists every navigation entry, disabling manager-only ones for staff.
func (u *dashboardUsecase) GetNavigation(caller *entity.UserProfile) *dto.NavigationResponse {
	items := make([]dto.NavigationItem, len(navigationItems))
	for i, item := range navigationItems {
		item.Disabled = item.ManagerOnly && !caller.IsManager()
		items[i] = item
	}
	return &dto.NavigationResponse{
		UserName: caller.FullName(),
		Role:     string(caller.Role),
		Items:    items,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, caller *entity.UserProfile) (*dto.DashboardResponse, error) {
	facilityID, err := facilityOf(caller)
	if err != nil {
		return nil, err
	}
	db := u.db.WithContext(ctx)

	var resp dto.DashboardResponse

	if resp.ActiveForms, err = u.formRepo.CountActiveByFacility(db, facilityID); err != nil {
		u.log.Warnf("Failed to count forms: %+v", err)
		return nil, err
	}

	now := u.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if resp.SubmissionsToday, err = u.submissionRepo.CountByFacilitySince(db, facilityID, startOfDay); err != nil {
		u.log.Warnf("Failed to count submissions: %+v", err)
		return nil, err
	}

	if resp.ActivePatients, err = u.patientRepo.CountActiveByFacility(db, facilityID); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	if resp.ActiveStaff, err = u.profileRepo.CountActiveByFacility(db, facilityID, entity.RoleStaff); err != nil {
		u.log.Warnf("Failed to count staff: %+v", err)
		return nil, err
	}

	return &resp, nil
}
