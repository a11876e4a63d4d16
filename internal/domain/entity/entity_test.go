package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RoleReceptionist.IsValid())
	assert.False(t, RoleNone.IsValid())
	assert.False(t, Role("ADMIN").IsValid())
	assert.False(t, Role("doctor").IsValid())
}

func TestUserRoleChecks(t *testing.T) {
	doctor := &User{Role: RoleDoctor}
	assert.True(t, doctor.IsDoctor())
	assert.False(t, doctor.IsReceptionist())

	receptionist := &User{Role: RoleReceptionist}
	assert.True(t, receptionist.IsReceptionist())
	assert.False(t, receptionist.IsDoctor())

	admin := &User{Role: RoleNone, IsAdmin: true}
	assert.False(t, admin.IsDoctor())
	assert.False(t, admin.IsReceptionist())
}

func TestAchievementTypeIsValid(t *testing.T) {
	assert.True(t, AchievementEducation.IsValid())
	assert.True(t, AchievementInternship.IsValid())
	assert.True(t, AchievementCertification.IsValid())
	assert.False(t, AchievementType("award").IsValid())
	assert.False(t, AchievementType("").IsValid())
}

func TestWeekdayIsValid(t *testing.T) {
	for d := WeekdayMonday; d <= WeekdaySunday; d++ {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Weekday(-1).IsValid())
	assert.False(t, Weekday(7).IsValid())
}

func TestAverageRating(t *testing.T) {
	doctor := &DoctorProfile{}
	assert.Equal(t, float64(0), doctor.AverageRating())

	doctor.Reviews = []DoctorReview{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}
	assert.InDelta(t, 4.0, doctor.AverageRating(), 0.001)

	doctor.Reviews = []DoctorReview{{Rating: 2}, {Rating: 5}}
	assert.InDelta(t, 3.5, doctor.AverageRating(), 0.001)
}

func TestPatientFullName(t *testing.T) {
	patient := &Patient{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", patient.FullName())
}

func TestProfileUser(t *testing.T) {
	owner := User{Username: "drjones"}

	doctorProfile := &Profile{
		Kind:   ProfileKindDoctor,
		Doctor: &DoctorProfile{User: owner},
	}
	assert.Equal(t, "drjones", doctorProfile.User().Username)

	receptionistProfile := &Profile{
		Kind:         ProfileKindReceptionist,
		Receptionist: &ReceptionistProfile{User: owner},
	}
	assert.Equal(t, "drjones", receptionistProfile.User().Username)

	unknown := &Profile{}
	assert.Nil(t, unknown.User())
}
