package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	PatientID   uuid.UUID        `json:"patient_id" validate:"required"`
	DoctorID    uuid.UUID        `json:"doctor_id" validate:"required"`
	ScheduledAt time.Time        `json:"scheduled_at" validate:"required"`
	Notes       string           `json:"notes" validate:"omitempty"`
	Total       *decimal.Decimal `json:"total" validate:"omitempty"`
}

type UpdateBookingRequest struct {
	ScheduledAt *time.Time       `json:"scheduled_at" validate:"omitempty"`
	Notes       *string          `json:"notes" validate:"omitempty"`
	Total       *decimal.Decimal `json:"total" validate:"omitempty"`
}

// PublicPatientInput is the embedded patient field-bag of the public intake.
// Date of birth is optional and defaults to a fixed placeholder.
type PublicPatientInput struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
}

type PublicBookingRequest struct {
	DoctorID    uuid.UUID           `json:"doctor" validate:"required"`
	ScheduledAt time.Time           `json:"scheduled_at" validate:"required"`
	Notes       string              `json:"notes" validate:"omitempty"`
	Total       *decimal.Decimal    `json:"total" validate:"omitempty"`
	Patient     *PublicPatientInput `json:"patient" validate:"required"`
}

// Response DTOs

type BookingResponse struct {
	ID          uuid.UUID        `json:"id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	DoctorID    uuid.UUID        `json:"doctor_id"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Notes       string           `json:"notes,omitempty"`
	Total       decimal.Decimal  `json:"total"`
	Patient     *PatientResponse `json:"patient,omitempty"`
	Doctor      *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
