package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	"go-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	doctorRepo       repository.DoctorProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	specialtyRepo    repository.SpecialtyRepository
	achievementRepo  repository.AchievementRepository
	auditService     service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	specialtyRepo repository.SpecialtyRepository,
	achievementRepo repository.AchievementRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		specialtyRepo:    specialtyRepo,
		achievementRepo:  achievementRepo,
		auditService:     auditService,
	}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.profileRepo.ResolveByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to resolve profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

// UpdateMyProfile applies a partial update over the caller's account fields
// and resolved profile variant. The variant section must match the resolved
// kind; specialty and achievement lists, when present, replace the stored
// sets wholesale.
func (u *profileUsecase) UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.ResolveByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to resolve profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	// The variant section, when present, must match the resolved kind
	if req.Doctor != nil && profile.Kind != entity.ProfileKindDoctor {
		return nil, ErrProfileMismatch
	}
	if req.Receptionist != nil && profile.Kind != entity.ProfileKindReceptionist {
		return nil, ErrProfileMismatch
	}

	old := converter.ProfileToResponse(profile)

	if req.User != nil {
		if err := u.applyAccountUpdate(tx, profile, req.User); err != nil {
			return nil, err
		}
	}

	switch profile.Kind {
	case entity.ProfileKindDoctor:
		if req.Doctor != nil {
			if err := u.applyDoctorUpdate(tx, profile.Doctor, req.Doctor); err != nil {
				return nil, err
			}
		} else if req.User != nil {
			if err := u.doctorRepo.Update(tx, profile.Doctor); err != nil {
				u.log.Warnf("Failed to update doctor profile: %+v", err)
				return nil, err
			}
		}
	case entity.ProfileKindReceptionist:
		if req.Receptionist != nil || req.User != nil {
			if err := u.applyReceptionistUpdate(tx, profile.Receptionist, req.Receptionist); err != nil {
				return nil, err
			}
		}
	}

	// Audit log - profile update
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "profile", userID.String(), old, converter.ProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(profile), nil
}

// applyAccountUpdate writes the email onto the user row and the shared
// attributes onto whichever variant base is resolved.
func (u *profileUsecase) applyAccountUpdate(tx *gorm.DB, profile *entity.Profile, input *dto.AccountUpdateInput) error {
	user := profile.User()

	if input.Email != nil {
		user.Email = *input.Email
		if err := u.userRepo.Update(tx, user); err != nil {
			if isDuplicateKeyError(err, "email") {
				return ErrEmailExists
			}
			u.log.Warnf("Failed to update user: %+v", err)
			return err
		}
	}

	var base *entity.ProfileBase
	switch profile.Kind {
	case entity.ProfileKindDoctor:
		base = &profile.Doctor.ProfileBase
	case entity.ProfileKindReceptionist:
		base = &profile.Receptionist.ProfileBase
	}

	if input.Avatar != nil {
		base.Avatar = *input.Avatar
	}
	if input.PhoneNumber != nil {
		base.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		base.Address = *input.Address
	}
	if input.Bio != nil {
		base.Bio = *input.Bio
	}

	return nil
}

func (u *profileUsecase) applyDoctorUpdate(tx *gorm.DB, profile *entity.DoctorProfile, input *dto.DoctorProfileUpdateInput) error {
	if input.MainSpecialty != nil {
		profile.MainSpecialty = *input.MainSpecialty
	}
	if input.Qualifications != nil {
		profile.Qualifications = *input.Qualifications
	}
	if input.LicenseNumber != nil {
		profile.LicenseNumber = input.LicenseNumber
	}
	if input.YearsOfExperience != nil {
		profile.YearsOfExperience = *input.YearsOfExperience
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return ErrLicenseExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return err
	}

	// A non-nil specialty list replaces the stored set wholesale; nil
	// leaves it untouched
	if input.SpecialtyIDs != nil {
		specialties, err := u.specialtyRepo.FindByIDs(tx, input.SpecialtyIDs)
		if err != nil {
			u.log.Warnf("Failed to find specialties: %+v", err)
			return err
		}
		if len(specialties) != len(input.SpecialtyIDs) {
			return ErrSpecialtyNotFound
		}
		if err := u.doctorRepo.ReplaceSpecialties(tx, profile, specialties); err != nil {
			u.log.Warnf("Failed to replace specialties: %+v", err)
			return err
		}
		profile.Specialties = specialties
	}

	// Achievements follow the destructive replace policy: drop everything,
	// recreate from the payload
	if input.Achievements != nil {
		if err := u.achievementRepo.DeleteByDoctorID(tx, profile.ID); err != nil {
			u.log.Warnf("Failed to delete achievements: %+v", err)
			return err
		}
		profile.Achievements = nil
		for _, ach := range input.Achievements {
			achievementType := entity.AchievementType(ach.Type)
			if !achievementType.IsValid() {
				return ErrInvalidAchievement
			}
			achievement := &entity.Achievement{
				DoctorID:    profile.ID,
				Type:        achievementType,
				Name:        ach.Name,
				Institution: ach.Institution,
				Year:        ach.Year,
				Details:     ach.Details,
			}
			if err := u.achievementRepo.Create(tx, achievement); err != nil {
				u.log.Warnf("Failed to create achievement: %+v", err)
				return err
			}
			profile.Achievements = append(profile.Achievements, *achievement)
		}
	}

	return nil
}

func (u *profileUsecase) applyReceptionistUpdate(tx *gorm.DB, profile *entity.ReceptionistProfile, input *dto.ReceptionistProfileUpdateInput) error {
	if input != nil {
		if input.PhoneExtension != nil {
			profile.PhoneExtension = input.PhoneExtension
		}
		if input.ShiftStart != nil {
			profile.ShiftStart = input.ShiftStart
		}
		if input.ShiftEnd != nil {
			profile.ShiftEnd = input.ShiftEnd
		}
	}

	if err := u.receptionistRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update receptionist profile: %+v", err)
		return err
	}

	return nil
}
