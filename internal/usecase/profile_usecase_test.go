package usecase

import (
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubDoctorProfileRepo struct {
	repository.DoctorProfileRepository

	updateErr error
	replaced  [][]entity.Specialty
}

func (s *stubDoctorProfileRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return s.updateErr
}

func (s *stubDoctorProfileRepo) ReplaceSpecialties(db *gorm.DB, profile *entity.DoctorProfile, specialties []entity.Specialty) error {
	s.replaced = append(s.replaced, specialties)
	return nil
}

type stubSpecialtyRepo struct {
	repository.SpecialtyRepository

	specialties []entity.Specialty
}

func (s *stubSpecialtyRepo) FindByIDs(db *gorm.DB, ids []int) ([]entity.Specialty, error) {
	return s.specialties, nil
}

type stubAchievementRepo struct {
	repository.AchievementRepository

	deletedFor []uuid.UUID
	created    []entity.Achievement
}

func (s *stubAchievementRepo) DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) error {
	s.deletedFor = append(s.deletedFor, doctorID)
	return nil
}

func (s *stubAchievementRepo) Create(db *gorm.DB, achievement *entity.Achievement) error {
	achievement.ID = int64(len(s.created) + 1)
	s.created = append(s.created, *achievement)
	return nil
}

func newDoctorUpdateFixture() (*profileUsecase, *stubDoctorProfileRepo, *stubSpecialtyRepo, *stubAchievementRepo, *entity.DoctorProfile) {
	doctorRepo := &stubDoctorProfileRepo{}
	specialtyRepo := &stubSpecialtyRepo{}
	achievementRepo := &stubAchievementRepo{}
	u := &profileUsecase{
		log:             quietLogger(),
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		achievementRepo: achievementRepo,
	}
	profile := &entity.DoctorProfile{
		ID: uuid.New(),
		Achievements: []entity.Achievement{
			{ID: 1, Type: entity.AchievementEducation, Name: "MD"},
			{ID: 2, Type: entity.AchievementCertification, Name: "ACLS"},
		},
	}
	return u, doctorRepo, specialtyRepo, achievementRepo, profile
}

func TestApplyDoctorUpdateReplacesAchievements(t *testing.T) {
	u, _, _, achievementRepo, profile := newDoctorUpdateFixture()

	year := 2019
	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{
		Achievements: []dto.AchievementInput{
			{Type: "internship", Name: "Residency", Institution: "City Hospital", Year: &year},
		},
	})

	assert.NoError(t, err)
	// Stored set dropped wholesale, then rebuilt from the payload
	assert.Equal(t, []uuid.UUID{profile.ID}, achievementRepo.deletedFor)
	assert.Len(t, achievementRepo.created, 1)
	assert.Equal(t, entity.AchievementInternship, achievementRepo.created[0].Type)
	assert.Len(t, profile.Achievements, 1)
	assert.Equal(t, "Residency", profile.Achievements[0].Name)
}

func TestApplyDoctorUpdateEmptyAchievementListClears(t *testing.T) {
	u, _, _, achievementRepo, profile := newDoctorUpdateFixture()

	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{
		Achievements: []dto.AchievementInput{},
	})

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{profile.ID}, achievementRepo.deletedFor)
	assert.Empty(t, achievementRepo.created)
	assert.Empty(t, profile.Achievements)
}

func TestApplyDoctorUpdateNilAchievementsUntouched(t *testing.T) {
	u, _, _, achievementRepo, profile := newDoctorUpdateFixture()

	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{})

	assert.NoError(t, err)
	assert.Empty(t, achievementRepo.deletedFor)
	assert.Len(t, profile.Achievements, 2)
}

func TestApplyDoctorUpdateInvalidAchievementType(t *testing.T) {
	u, _, _, _, profile := newDoctorUpdateFixture()

	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{
		Achievements: []dto.AchievementInput{{Type: "award", Name: "Best Doctor"}},
	})

	assert.ErrorIs(t, err, ErrInvalidAchievement)
}

func TestApplyDoctorUpdateReplacesSpecialtiesWholesale(t *testing.T) {
	u, doctorRepo, specialtyRepo, _, profile := newDoctorUpdateFixture()
	specialtyRepo.specialties = []entity.Specialty{
		{ID: 1, Name: "Cardiology"},
		{ID: 3, Name: "Neurology"},
	}

	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{
		SpecialtyIDs: []int{1, 3},
	})

	assert.NoError(t, err)
	assert.Len(t, doctorRepo.replaced, 1)
	assert.Equal(t, specialtyRepo.specialties, profile.Specialties)
}

func TestApplyDoctorUpdateUnknownSpecialtyID(t *testing.T) {
	u, doctorRepo, specialtyRepo, _, profile := newDoctorUpdateFixture()
	specialtyRepo.specialties = []entity.Specialty{{ID: 1, Name: "Cardiology"}}

	err := u.applyDoctorUpdate(nil, profile, &dto.DoctorProfileUpdateInput{
		SpecialtyIDs: []int{1, 99},
	})

	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
	assert.Empty(t, doctorRepo.replaced)
}
