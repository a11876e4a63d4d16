package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO.
// Average rating is derived from the preloaded reviews.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                profile.ID,
		UserID:            profile.UserID,
		Username:          profile.User.Username,
		Email:             profile.User.Email,
		Avatar:            profile.Avatar,
		PhoneNumber:       profile.PhoneNumber,
		Address:           profile.Address,
		Bio:               profile.Bio,
		MainSpecialty:     profile.MainSpecialty,
		Specialties:       SpecialtiesToResponses(profile.Specialties),
		Qualifications:    profile.Qualifications,
		LicenseNumber:     profile.LicenseNumber,
		YearsOfExperience: profile.YearsOfExperience,
		IsActive:          profile.IsActive,
		AverageRating:     profile.AverageRating(),
		Achievements:      AchievementsToResponses(profile.Achievements),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}

// SpecialtiesToResponses converts specialty entities to DTOs
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		responses[i] = dto.SpecialtyResponse{
			ID:   s.ID,
			Name: s.Name,
		}
	}
	return responses
}

// AchievementsToResponses converts achievement entities to DTOs
func AchievementsToResponses(achievements []entity.Achievement) []dto.AchievementResponse {
	responses := make([]dto.AchievementResponse, len(achievements))
	for i, a := range achievements {
		responses[i] = dto.AchievementResponse{
			ID:          a.ID,
			Type:        string(a.Type),
			Name:        a.Name,
			Institution: a.Institution,
			Year:        a.Year,
			Details:     a.Details,
		}
	}
	return responses
}

// ReviewToResponse converts a DoctorReview entity to ReviewResponse DTO
func ReviewToResponse(review *entity.DoctorReview) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:         review.ID,
		DoctorID:   review.DoctorID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

// ReviewsToResponses converts a slice of DoctorReview entities to DTOs
func ReviewsToResponses(reviews []entity.DoctorReview) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}

// TimetableEntryToResponse converts a TimetableEntry entity to its DTO
func TimetableEntryToResponse(entry *entity.TimetableEntry) *dto.TimetableEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.TimetableEntryResponse{
		ID:        entry.ID,
		DoctorID:  entry.DoctorID,
		DayOfWeek: int(entry.DayOfWeek),
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		IsActive:  entry.IsActive,
	}
}

// TimetableEntriesToResponses converts a slice of TimetableEntry entities to DTOs
func TimetableEntriesToResponses(entries []entity.TimetableEntry) []dto.TimetableEntryResponse {
	responses := make([]dto.TimetableEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *TimetableEntryToResponse(&entries[i])
	}
	return responses
}
