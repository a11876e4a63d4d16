package converter

import (
	"testing"

	"go-clinic-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestProfileToResponseDoctor(t *testing.T) {
	profile := &entity.Profile{
		Kind: entity.ProfileKindDoctor,
		Doctor: &entity.DoctorProfile{
			User:          entity.User{Username: "drsmith", Email: "drsmith@clinic.test"},
			MainSpecialty: "Cardiology",
			Reviews:       []entity.DoctorReview{{Rating: 5}, {Rating: 3}},
		},
	}

	resp := ProfileToResponse(profile)
	assert.NotNil(t, resp)
	assert.Equal(t, "doctor", resp.Kind)
	assert.NotNil(t, resp.Doctor)
	assert.Nil(t, resp.Receptionist)
	assert.Equal(t, "drsmith", resp.Doctor.Username)
	assert.Equal(t, "Cardiology", resp.Doctor.MainSpecialty)
	assert.InDelta(t, 4.0, resp.Doctor.AverageRating, 0.001)
}

func TestProfileToResponseReceptionist(t *testing.T) {
	ext := "104"
	profile := &entity.Profile{
		Kind: entity.ProfileKindReceptionist,
		Receptionist: &entity.ReceptionistProfile{
			User:           entity.User{Username: "frontdesk"},
			PhoneExtension: &ext,
		},
	}

	resp := ProfileToResponse(profile)
	assert.NotNil(t, resp)
	assert.Equal(t, "receptionist", resp.Kind)
	assert.Nil(t, resp.Doctor)
	assert.NotNil(t, resp.Receptionist)
	assert.Equal(t, "frontdesk", resp.Receptionist.Username)
	assert.Equal(t, "104", *resp.Receptionist.PhoneExtension)
}

func TestProfileToResponseNil(t *testing.T) {
	assert.Nil(t, ProfileToResponse(nil))
}

func TestUserToResponseOmitsPassword(t *testing.T) {
	user := &entity.User{
		Username: "admin",
		Email:    "admin@clinic.test",
		Password: "hashed",
		IsAdmin:  true,
	}

	resp := UserToResponse(user, nil)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "", resp.Role)
	assert.True(t, resp.IsAdmin)
	assert.Nil(t, resp.Profile)
}
