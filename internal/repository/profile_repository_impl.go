package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor Profile Repository

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Specialties").Preload("Achievements").Preload("Reviews").
		Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Specialties").Preload("Achievements").Preload("Reviews").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	query := db.Preload("User").Preload("Specialties").Preload("Achievements").Preload("Reviews")

	if filter != nil {
		if filter.Specialty != "" {
			pattern := "%" + filter.Specialty + "%"
			query = query.Where(
				"main_specialty ILIKE ? OR id IN (?)",
				pattern,
				db.Table("doctor_specialties").
					Select("doctor_specialties.doctor_profile_id").
					Joins("JOIN specialties ON specialties.id = doctor_specialties.specialty_id").
					Where("specialties.name ILIKE ?", pattern),
			)
		}
		if filter.Name != "" {
			pattern := "%" + filter.Name + "%"
			query = query.Joins("JOIN users ON users.id = doctor_profiles.user_id").
				Where("users.username ILIKE ? OR users.email ILIKE ?", pattern, pattern)
		}
		if filter.Active != nil {
			query = query.Where("doctor_profiles.is_active = ?", *filter.Active)
		}
	}

	var profiles []entity.DoctorProfile
	err := query.Order("doctor_profiles.created_at DESC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("Specialties", "Achievements", "Reviews", "TimetableEntries", "User").Save(profile).Error
}

func (r *doctorProfileRepository) ReplaceSpecialties(db *gorm.DB, profile *entity.DoctorProfile, specialties []entity.Specialty) error {
	return db.Model(profile).Association("Specialties").Replace(specialties)
}

// Receptionist Profile Repository

type receptionistProfileRepository struct{}

func NewReceptionistProfileRepository() domainRepo.ReceptionistProfileRepository {
	return &receptionistProfileRepository{}
}

func (r *receptionistProfileRepository) Create(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Create(profile).Error
}

func (r *receptionistProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ReceptionistProfile, error) {
	var profile entity.ReceptionistProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *receptionistProfileRepository) Update(db *gorm.DB, profile *entity.ReceptionistProfile) error {
	return db.Omit("User").Save(profile).Error
}

// Profile Resolver

type profileRepository struct {
	doctorRepo       domainRepo.DoctorProfileRepository
	receptionistRepo domainRepo.ReceptionistProfileRepository
}

func NewProfileRepository(
	doctorRepo domainRepo.DoctorProfileRepository,
	receptionistRepo domainRepo.ReceptionistProfileRepository,
) domainRepo.ProfileRepository {
	return &profileRepository{
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
	}
}

// ResolveByUserID returns the profile variant owned by the user, doctor first.
// Both lookups hit the unique user_id index. Returns nil when the user owns
// neither variant (administrator accounts).
func (r *profileRepository) ResolveByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	doctor, err := r.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		return &entity.Profile{Kind: entity.ProfileKindDoctor, Doctor: doctor}, nil
	}

	receptionist, err := r.receptionistRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if receptionist != nil {
		return &entity.Profile{Kind: entity.ProfileKindReceptionist, Receptionist: receptionist}, nil
	}

	return nil, nil
}
