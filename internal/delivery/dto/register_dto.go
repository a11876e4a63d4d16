package dto

// Request DTOs

// RegisterRequest creates an account plus its role-matching profile in one
// atomic step. Exactly one profile section must be present and it must match
// the requested role.
type RegisterRequest struct {
	User                UserCreateRequest         `json:"user" validate:"required"`
	DoctorProfile       *DoctorProfileInput       `json:"doctor_profile,omitempty" validate:"omitempty"`
	ReceptionistProfile *ReceptionistProfileInput `json:"receptionist_profile,omitempty" validate:"omitempty"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=DOCTOR RECEPTIONIST"`
}

type DoctorProfileInput struct {
	Avatar            string             `json:"avatar" validate:"omitempty"`
	PhoneNumber       string             `json:"phone_number" validate:"omitempty,min=9,max=20"`
	Address           string             `json:"address" validate:"omitempty"`
	Bio               string             `json:"bio" validate:"omitempty"`
	MainSpecialty     string             `json:"main_specialty" validate:"required,max=100"`
	Qualifications    string             `json:"qualifications" validate:"omitempty,max=255"`
	LicenseNumber     *string            `json:"license_number" validate:"omitempty,max=50"`
	YearsOfExperience int                `json:"years_of_experience" validate:"gte=0"`
	IsActive          *bool              `json:"is_active" validate:"omitempty"`
	SpecialtyIDs      []int              `json:"specialty_ids" validate:"omitempty,dive,min=1"`
	Achievements      []AchievementInput `json:"achievements" validate:"omitempty,dive"`
}

type AchievementInput struct {
	Type        string `json:"type" validate:"required,oneof=education internship certification"`
	Name        string `json:"name" validate:"required,max=255"`
	Institution string `json:"institution" validate:"omitempty,max=255"`
	Year        *int   `json:"year" validate:"omitempty,gte=1900"`
	Details     string `json:"details" validate:"omitempty"`
}

type ReceptionistProfileInput struct {
	Avatar         string  `json:"avatar" validate:"omitempty"`
	PhoneNumber    string  `json:"phone_number" validate:"omitempty,min=9,max=20"`
	Address        string  `json:"address" validate:"omitempty"`
	Bio            string  `json:"bio" validate:"omitempty"`
	PhoneExtension *string `json:"phone_extension" validate:"omitempty,max=10"`
	ShiftStart     *string `json:"shift_start" validate:"omitempty"` // HH:MM
	ShiftEnd       *string `json:"shift_end" validate:"omitempty"`   // HH:MM
}

// Response DTOs

// RegisterResponse is the composite result: the created account (password
// never included) and the created profile in its role-appropriate shape.
type RegisterResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}
