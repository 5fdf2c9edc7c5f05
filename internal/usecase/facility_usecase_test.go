package usecase

import (
	"context"
	"testing"

	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacilityUsecase_AssignStaff(t *testing.T) {
	facilityID := uuid.New()
	manager := managerOf(facilityID)
	other := uuid.New()

	unassigned := staffOf(nil)
	unassigned.Email = "new@care.test"
	elsewhere := staffOf(&other)
	elsewhere.Email = "busy@care.test"
	colleague := managerOf(other)
	colleague.Email = "boss@care.test"

	tests := []struct {
		name    string
		email   string
		wantErr error
		audited bool
	}{
		{"unassigned staff joins", " New@Care.test ", nil, true},
		{"unknown email", "ghost@care.test", ErrStaffNotFound, false},
		{"manager account", "boss@care.test", ErrNotStaff, false},
		{"staff of another facility", "busy@care.test", ErrStaffAlreadyAssigned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			profiles := newFakeProfileRepo()
			for _, p := range []*entity.UserProfile{unassigned, elsewhere, colleague} {
				cp := *p
				profiles.byID[cp.UserID] = &cp
			}
			audit := &fakeAuditService{}
			uc := NewFacilityUsecase(db, quietLogger(), &fakeFacilityRepo{}, profiles, audit)

			mock.ExpectBegin()
			if tt.wantErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			resp, err := uc.AssignStaff(context.Background(), manager, &dto.AssignStaffRequest{Email: tt.email})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp.FacilityID)
				assert.Equal(t, facilityID, *resp.FacilityID)
				assert.True(t, profiles.byID[unassigned.UserID].BelongsTo(facilityID))
			}
			assert.Equal(t, tt.audited, len(audit.entries) == 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFacilityUsecase_StaffCannotAssign(t *testing.T) {
	db, _ := setupMockDB(t)
	facilityID := uuid.New()
	uc := NewFacilityUsecase(db, quietLogger(), &fakeFacilityRepo{}, newFakeProfileRepo(), &fakeAuditService{})

	_, err := uc.AssignStaff(context.Background(), staffOf(&facilityID), &dto.AssignStaffRequest{Email: "x@care.test"})
	assert.ErrorIs(t, err, ErrManagerOnly)
}

func TestFacilityUsecase_ListStaffScopedToFacility(t *testing.T) {
	db, _ := setupMockDB(t)
	facilityID := uuid.New()
	other := uuid.New()
	profiles := newFakeProfileRepo()
	for _, p := range []*entity.UserProfile{staffOf(&facilityID), staffOf(&facilityID), staffOf(&other)} {
		profiles.byID[p.UserID] = p
	}
	uc := NewFacilityUsecase(db, quietLogger(), &fakeFacilityRepo{}, profiles, &fakeAuditService{})

	resp, err := uc.ListStaff(context.Background(), managerOf(facilityID))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
