package repository

import (
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(db *gorm.DB, profile *entity.UserProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error)
	FindByEmail(db *gorm.DB, email string) (*entity.UserProfile, error)
	FindByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.UserProfile, error)
	CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID, role entity.Role) (int64, error)
	AssignFacility(db *gorm.DB, userID, facilityID uuid.UUID) (int64, error)
}
