package repository

import (
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByFacility(db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error)
}
