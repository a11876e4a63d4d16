package dto

import "github.com/google/uuid"

// Request DTOs

type CreateTimetableEntryRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"` // HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // HH:MM
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateTimetableEntryRequest struct {
	DayOfWeek *int    `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime *string `json:"start_time" validate:"omitempty"`
	EndTime   *string `json:"end_time" validate:"omitempty"`
	IsActive  *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type TimetableEntryResponse struct {
	ID        int64     `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsActive  bool      `json:"is_active"`
}

type TimetableListResponse struct {
	Entries []TimetableEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
}
