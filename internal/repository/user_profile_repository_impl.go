package repository

import (
	"errors"

	"lenglogs/internal/domain/entity"
	domainRepo "lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(db *gorm.DB, profile *entity.UserProfile) error {
	return db.Omit("Facility").Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) FindByFacility(db *gorm.DB, facilityID uuid.UUID) ([]entity.UserProfile, error) {
	var profiles []entity.UserProfile
	err := db.Scopes(ByFacility(facilityID)).
		Order("last_name ASC, first_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userProfileRepository) CountActiveByFacility(db *gorm.DB, facilityID uuid.UUID, role entity.Role) (int64, error) {
	var count int64
	err := db.Model(&entity.UserProfile{}).
		Scopes(ByFacility(facilityID), ActiveOnly).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (r *userProfileRepository) AssignFacility(db *gorm.DB, userID, facilityID uuid.UUID) (int64, error) {
	result := db.Model(&entity.UserProfile{}).
		Where("user_id = ?", userID).
		Update("facility_id", facilityID)
	return result.RowsAffected, result.Error
}
