package usecase

import (
	"context"

	"lenglogs/internal/converter"
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, caller *entity.UserProfile, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, caller *entity.UserProfile, page, limit int) (*dto.AuditLogListResponse, error) {
	facilityID, err := managerFacility(caller)
	if err != nil {
		return nil, err
	}
	page, limit = NormalizePage(page, limit)

	logs, total, err := u.auditLogRepo.FindByFacility(u.db.WithContext(ctx), facilityID, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}

// NormalizePage applies the audit log paging defaults: page 1, 20 rows, at most 100.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
