package service

import (
	"context"

	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditEntry identifies who did what to which record.
type AuditEntry struct {
	UserID     uuid.UUID
	FacilityID *uuid.UUID
	Action     string
	Entity     string
	EntityID   string
}

// AuditService writes audit rows on the caller's transaction so they commit
// or roll back with the change they describe.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, entry AuditEntry, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, entry AuditEntry, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, entry AuditEntry, oldValue interface{}) error
	LogEvent(ctx context.Context, tx *gorm.DB, entry AuditEntry, details entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, entry AuditEntry, newValue interface{}) error {
	return s.write(ctx, tx, entry, entity.JSON{
		"entity":    entry.Entity,
		"entity_id": entry.EntityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, entry AuditEntry, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, entry, entity.JSON{
		"entity":    entry.Entity,
		"entity_id": entry.EntityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, entry AuditEntry, oldValue interface{}) error {
	return s.write(ctx, tx, entry, entity.JSON{
		"entity":    entry.Entity,
		"entity_id": entry.EntityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogEvent logs an action that changes no record, such as a sign-in.
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, entry AuditEntry, details entity.JSON) error {
	metadata := entity.JSON{}
	if entry.Entity != "" {
		metadata["entity"] = entry.Entity
		metadata["entity_id"] = entry.EntityID
	}
	for k, v := range details {
		metadata[k] = v
	}
	return s.write(ctx, tx, entry, metadata)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, entry AuditEntry, metadata entity.JSON) error {
	userID := entry.UserID
	auditLog := &entity.AuditLog{
		UserID:     &userID,
		FacilityID: entry.FacilityID,
		Action:     entry.Action,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
