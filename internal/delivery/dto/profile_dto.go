package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileResponse is the serialized tagged union over the profile variants.
// Kind names the variant; exactly one of Doctor/Receptionist is set.
type ProfileResponse struct {
	Kind         string                `json:"kind"`
	Doctor       *DoctorResponse       `json:"doctor,omitempty"`
	Receptionist *ReceptionistResponse `json:"receptionist,omitempty"`
}

type ReceptionistResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Avatar         string    `json:"avatar,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	PhoneExtension *string   `json:"phone_extension,omitempty"`
	ShiftStart     *string   `json:"shift_start,omitempty"`
	ShiftEnd       *string   `json:"shift_end,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the partial self-update payload. The account
// section applies to the user row and the shared profile attributes; the
// variant section applies to the resolved profile shape.
type UpdateProfileRequest struct {
	User         *AccountUpdateInput            `json:"user,omitempty" validate:"omitempty"`
	Doctor       *DoctorProfileUpdateInput      `json:"doctor_profile,omitempty" validate:"omitempty"`
	Receptionist *ReceptionistProfileUpdateInput `json:"receptionist_profile,omitempty" validate:"omitempty"`
}

type AccountUpdateInput struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Avatar      *string `json:"avatar" validate:"omitempty"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=9,max=20"`
	Address     *string `json:"address" validate:"omitempty"`
	Bio         *string `json:"bio" validate:"omitempty"`
}

type DoctorProfileUpdateInput struct {
	MainSpecialty     *string            `json:"main_specialty" validate:"omitempty,max=100"`
	Qualifications    *string            `json:"qualifications" validate:"omitempty,max=255"`
	LicenseNumber     *string            `json:"license_number" validate:"omitempty,max=50"`
	YearsOfExperience *int               `json:"years_of_experience" validate:"omitempty,gte=0"`
	IsActive          *bool              `json:"is_active" validate:"omitempty"`
	SpecialtyIDs      []int              `json:"specialty_ids" validate:"omitempty,dive,min=1"`
	Achievements      []AchievementInput `json:"achievements" validate:"omitempty,dive"`
}

type ReceptionistProfileUpdateInput struct {
	PhoneExtension *string `json:"phone_extension" validate:"omitempty,max=10"`
	ShiftStart     *string `json:"shift_start" validate:"omitempty"`
	ShiftEnd       *string `json:"shift_end" validate:"omitempty"`
}
