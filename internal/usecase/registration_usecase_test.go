package usecase

import (
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoleDispatch(t *testing.T) {
	doctorSection := &dto.DoctorProfileInput{MainSpecialty: "Cardiology"}
	receptionistSection := &dto.ReceptionistProfileInput{}

	tests := []struct {
		name string
		role entity.Role
		req  *dto.RegisterRequest
		want error
	}{
		{
			name: "doctor with doctor profile",
			role: entity.RoleDoctor,
			req:  &dto.RegisterRequest{DoctorProfile: doctorSection},
			want: nil,
		},
		{
			name: "receptionist with receptionist profile",
			role: entity.RoleReceptionist,
			req:  &dto.RegisterRequest{ReceptionistProfile: receptionistSection},
			want: nil,
		},
		{
			name: "unknown role",
			role: entity.Role("ADMIN"),
			req:  &dto.RegisterRequest{DoctorProfile: doctorSection},
			want: ErrInvalidRole,
		},
		{
			name: "empty role",
			role: entity.RoleNone,
			req:  &dto.RegisterRequest{},
			want: ErrInvalidRole,
		},
		{
			name: "doctor missing doctor profile",
			role: entity.RoleDoctor,
			req:  &dto.RegisterRequest{},
			want: ErrProfileMismatch,
		},
		{
			name: "doctor with receptionist profile",
			role: entity.RoleDoctor,
			req:  &dto.RegisterRequest{ReceptionistProfile: receptionistSection},
			want: ErrProfileMismatch,
		},
		{
			name: "doctor with both profiles",
			role: entity.RoleDoctor,
			req:  &dto.RegisterRequest{DoctorProfile: doctorSection, ReceptionistProfile: receptionistSection},
			want: ErrProfileMismatch,
		},
		{
			name: "receptionist with doctor profile",
			role: entity.RoleReceptionist,
			req:  &dto.RegisterRequest{DoctorProfile: doctorSection},
			want: ErrProfileMismatch,
		},
		{
			name: "receptionist with both profiles",
			role: entity.RoleReceptionist,
			req:  &dto.RegisterRequest{DoctorProfile: doctorSection, ReceptionistProfile: receptionistSection},
			want: ErrProfileMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoleDispatch(tt.role, tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestWithOwner(t *testing.T) {
	user := &entity.User{Username: "drsmith", Email: "drsmith@clinic.test"}

	doctorProfile := &entity.Profile{
		Kind:   entity.ProfileKindDoctor,
		Doctor: &entity.DoctorProfile{MainSpecialty: "Dermatology"},
	}
	doctor, receptionist := withOwner(user, doctorProfile)
	assert.NotNil(t, doctor)
	assert.Nil(t, receptionist)
	assert.Equal(t, "drsmith", doctor.User.Username)

	receptionistProfile := &entity.Profile{
		Kind:         entity.ProfileKindReceptionist,
		Receptionist: &entity.ReceptionistProfile{},
	}
	doctor, receptionist = withOwner(user, receptionistProfile)
	assert.Nil(t, doctor)
	assert.NotNil(t, receptionist)
	assert.Equal(t, "drsmith@clinic.test", receptionist.User.Email)
}
