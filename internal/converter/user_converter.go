package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The profile is
// attached when the caller resolved one; password is never included.
func UserToResponse(user *entity.User, profile *entity.Profile) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		IsAdmin:   user.IsAdmin,
		Profile:   ProfileToResponse(profile),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i], nil)
	}
	return responses
}
