package converter

import (
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ProfileToResponse converts a UserProfile entity to UserProfileResponse DTO
func ProfileToResponse(profile *entity.UserProfile) *dto.UserProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.UserProfileResponse{
		UserID:     profile.UserID,
		Email:      profile.Email,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		FullName:   profile.FullName(),
		Role:       string(profile.Role),
		FacilityID: profile.FacilityID,
		Phone:      profile.Phone,
		IsActive:   profile.IsActive,
		CreatedAt:  profile.CreatedAt,
	}
}

func ProfilesToResponses(profiles []entity.UserProfile) []dto.UserProfileResponse {
	responses := make([]dto.UserProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProfileToResponse(&profiles[i])
	}
	return responses
}

func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	return &dto.FacilityResponse{
		ID:        facility.ID,
		Name:      facility.Name,
		Address:   facility.Address,
		Phone:     facility.Phone,
		Email:     facility.Email,
		CreatedBy: facility.CreatedBy,
		CreatedAt: facility.CreatedAt,
	}
}
