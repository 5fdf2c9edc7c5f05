package repository

import (
	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

// FindByFacility returns one page of the facility's audit trail, newest first, and the total row count.
func (r *auditLogRepository) FindByFacility(db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error) {
	var total int64
	if err := db.Model(&entity.AuditLog{}).Scopes(ByFacility(facilityID)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	err := db.Scopes(ByFacility(facilityID), Paginate(limit, offset)).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
