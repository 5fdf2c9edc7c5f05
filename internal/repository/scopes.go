package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByFacility limits a query to rows of one facility.
func ByFacility(facilityID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("facility_id = ?", facilityID)
	}
}

// ActiveOnly hides soft-deleted rows.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func Paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			limit = 50
		}
		if offset < 0 {
			offset = 0
		}
		return db.Limit(limit).Offset(offset)
	}
}
