package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	"go-clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidRole        = errors.New("role must be DOCTOR or RECEPTIONIST")
	ErrProfileMismatch    = errors.New("profile payload does not match the requested role")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrLicenseExists      = errors.New("license number already exists")
	ErrSpecialtyNotFound  = errors.New("one or more specialty ids do not exist")
	ErrInvalidAchievement = errors.New("invalid achievement type")
)

type RegistrationUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type registrationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	doctorRepo       repository.DoctorProfileRepository
	receptionistRepo repository.ReceptionistProfileRepository
	specialtyRepo    repository.SpecialtyRepository
	achievementRepo  repository.AchievementRepository
	auditService     service.AuditService
}

func NewRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	receptionistRepo repository.ReceptionistProfileRepository,
	specialtyRepo repository.SpecialtyRepository,
	achievementRepo repository.AchievementRepository,
	auditService service.AuditService,
) RegistrationUsecase {
	return &registrationUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		specialtyRepo:    specialtyRepo,
		achievementRepo:  achievementRepo,
		auditService:     auditService,
	}
}

// Register creates the account and its role-matching profile variant in a
// single transaction. Any failure rolls the whole workflow back; a partially
// created account is never a legal outcome.
func (u *registrationUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := entity.Role(req.User.Role)
	if err := validateRoleDispatch(role, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Create user
	user := &entity.User{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	// Dispatch on role to create the matching profile variant
	var profile *entity.Profile
	switch role {
	case entity.RoleDoctor:
		doctorProfile, err := u.createDoctorProfile(tx, user, req.DoctorProfile)
		if err != nil {
			return nil, err
		}
		profile = &entity.Profile{Kind: entity.ProfileKindDoctor, Doctor: doctorProfile}
	case entity.RoleReceptionist:
		receptionistProfile, err := u.createReceptionistProfile(tx, user, req.ReceptionistProfile)
		if err != nil {
			return nil, err
		}
		profile = &entity.Profile{Kind: entity.ProfileKindReceptionist, Receptionist: receptionistProfile}
	}

	// Audit log - registration
	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), converter.UserToResponse(user, nil)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.Doctor, profile.Receptionist = withOwner(user, profile)

	return &dto.RegisterResponse{
		User:    *converter.UserToResponse(user, nil),
		Profile: *converter.ProfileToResponse(profile),
	}, nil
}

// validateRoleDispatch rejects unknown roles and mismatched profile sections
// before any write happens.
func validateRoleDispatch(role entity.Role, req *dto.RegisterRequest) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	switch role {
	case entity.RoleDoctor:
		if req.DoctorProfile == nil || req.ReceptionistProfile != nil {
			return ErrProfileMismatch
		}
	case entity.RoleReceptionist:
		if req.ReceptionistProfile == nil || req.DoctorProfile != nil {
			return ErrProfileMismatch
		}
	}
	return nil
}

func (u *registrationUsecase) createDoctorProfile(tx *gorm.DB, user *entity.User, input *dto.DoctorProfileInput) (*entity.DoctorProfile, error) {
	profile := &entity.DoctorProfile{
		UserID: user.ID,
		ProfileBase: entity.ProfileBase{
			Avatar:      input.Avatar,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
			Bio:         input.Bio,
		},
		MainSpecialty:     input.MainSpecialty,
		Qualifications:    input.Qualifications,
		LicenseNumber:     input.LicenseNumber,
		YearsOfExperience: input.YearsOfExperience,
		IsActive:          true,
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}

	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	// Attach the many-to-many specialty set
	if len(input.SpecialtyIDs) > 0 {
		specialties, err := u.specialtyRepo.FindByIDs(tx, input.SpecialtyIDs)
		if err != nil {
			u.log.Warnf("Failed to find specialties: %+v", err)
			return nil, err
		}
		if len(specialties) != len(input.SpecialtyIDs) {
			return nil, ErrSpecialtyNotFound
		}
		if err := u.doctorRepo.ReplaceSpecialties(tx, profile, specialties); err != nil {
			u.log.Warnf("Failed to attach specialties: %+v", err)
			return nil, err
		}
		profile.Specialties = specialties
	}

	// Create each achievement sub-record
	for _, ach := range input.Achievements {
		achievementType := entity.AchievementType(ach.Type)
		if !achievementType.IsValid() {
			return nil, ErrInvalidAchievement
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
			return nil, err
		}
		profile.Achievements = append(profile.Achievements, *achievement)
	}

	return profile, nil
}

func (u *registrationUsecase) createReceptionistProfile(tx *gorm.DB, user *entity.User, input *dto.ReceptionistProfileInput) (*entity.ReceptionistProfile, error) {
	profile := &entity.ReceptionistProfile{
		UserID: user.ID,
		ProfileBase: entity.ProfileBase{
			Avatar:      input.Avatar,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
			Bio:         input.Bio,
		},
		PhoneExtension: input.PhoneExtension,
		ShiftStart:     input.ShiftStart,
		ShiftEnd:       input.ShiftEnd,
	}

	if err := u.receptionistRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
		return nil, err
	}

	return profile, nil
}

// withOwner fills the freshly created profile's User relation so the
// response converter can serialize username/email without a reload.
func withOwner(user *entity.User, profile *entity.Profile) (*entity.DoctorProfile, *entity.ReceptionistProfile) {
	switch profile.Kind {
	case entity.ProfileKindDoctor:
		profile.Doctor.User = *user
		return profile.Doctor, nil
	case entity.ProfileKindReceptionist:
		profile.Receptionist.User = *user
		return nil, profile.Receptionist
	}
	return nil, nil
}
