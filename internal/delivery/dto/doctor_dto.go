package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// DoctorFilterRequest is parsed from the public directory query string
type DoctorFilterRequest struct {
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Name      string `json:"name" validate:"omitempty,max=150"`
	Active    *bool  `json:"active" validate:"omitempty"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AchievementResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
	Year        *int   `json:"year,omitempty"`
	Details     string `json:"details,omitempty"`
}

type DoctorResponse struct {
	ID                uuid.UUID             `json:"id"`
	UserID            uuid.UUID             `json:"user_id"`
	Username          string                `json:"username"`
	Email             string                `json:"email"`
	Avatar            string                `json:"avatar,omitempty"`
	PhoneNumber       string                `json:"phone_number,omitempty"`
	Address           string                `json:"address,omitempty"`
	Bio               string                `json:"bio,omitempty"`
	MainSpecialty     string                `json:"main_specialty"`
	Specialties       []SpecialtyResponse   `json:"specialties"`
	Qualifications    string                `json:"qualifications,omitempty"`
	LicenseNumber     *string               `json:"license_number,omitempty"`
	YearsOfExperience int                   `json:"years_of_experience"`
	IsActive          bool                  `json:"is_active"`
	AverageRating     float64               `json:"average_rating"`
	Achievements      []AchievementResponse `json:"achievements"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

type ReviewResponse struct {
	ID         int64      `json:"id"`
	DoctorID   uuid.UUID  `json:"doctor_id"`
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
