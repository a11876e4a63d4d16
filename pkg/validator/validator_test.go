package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=DOCTOR RECEPTIONIST"`
	Rating   int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type sampleContact struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type sampleNestedRequest struct {
	Notes   string         `json:"notes" validate:"omitempty"`
	Contact *sampleContact `json:"contact" validate:"required"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "drsmith",
		Email:    "drsmith@clinic.test",
		Role:     "DOCTOR",
		Rating:   4,
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "ab",
		Email:    "not-an-email",
		Role:     "ADMIN",
		Rating:   9,
	})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "username must be at least 3 characters", formatted["username"])
	assert.Equal(t, "email must be a valid email address", formatted["email"])
	assert.Equal(t, "role must be one of: DOCTOR RECEPTIONIST", formatted["role"])
	assert.Equal(t, "rating must be less than or equal to 5", formatted["rating"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "username is required", formatted["username"])
	assert.Equal(t, "email is required", formatted["email"])
	assert.Equal(t, "role is required", formatted["role"])
	assert.NotContains(t, formatted, "rating")
}

func TestFormatValidationErrorsNested(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleNestedRequest{
		Contact: &sampleContact{Email: "not-an-email"},
	})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "first_name is required", formatted["contact.first_name"])
	assert.Equal(t, "email must be a valid email address", formatted["contact.email"])
	assert.NotContains(t, formatted, "first_name")
	assert.NotContains(t, formatted, "Email")
}

func TestFormatValidationErrorsNestedMissingSection(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleNestedRequest{})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "contact is required", formatted["contact"])
}
