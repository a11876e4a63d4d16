package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// ProfileToResponse converts the profile tagged union to its DTO, dispatching
// on the kind discriminant.
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	switch profile.Kind {
	case entity.ProfileKindDoctor:
		return &dto.ProfileResponse{
			Kind:   string(entity.ProfileKindDoctor),
			Doctor: DoctorProfileToResponse(profile.Doctor),
		}
	case entity.ProfileKindReceptionist:
		return &dto.ProfileResponse{
			Kind:         string(entity.ProfileKindReceptionist),
			Receptionist: ReceptionistProfileToResponse(profile.Receptionist),
		}
	}
	return nil
}

// ReceptionistProfileToResponse converts a ReceptionistProfile entity to its DTO
func ReceptionistProfileToResponse(profile *entity.ReceptionistProfile) *dto.ReceptionistResponse {
	if profile == nil {
		return nil
	}

	return &dto.ReceptionistResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Username:       profile.User.Username,
		Email:          profile.User.Email,
		Avatar:         profile.Avatar,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		Bio:            profile.Bio,
		PhoneExtension: profile.PhoneExtension,
		ShiftStart:     profile.ShiftStart,
		ShiftEnd:       profile.ShiftEnd,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}
