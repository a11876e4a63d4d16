package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context, filter *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorProfileRepository
	specialtyRepo repository.SpecialtyRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorProfileRepository, specialtyRepo repository.SpecialtyRepository) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
	}
}

// GetAllDoctors lists the public directory, optionally narrowed by
// specialty, name, and active state.
func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	entityFilter := &entity.DoctorFilter{}
	if filter != nil {
		entityFilter.Specialty = filter.Specialty
		entityFilter.Name = filter.Name
		entityFilter.Active = filter.Active
	}

	doctors, err := u.doctorRepo.FindAll(db, entityFilter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(doctor), nil
}

// GetSpecialties lists the catalog backing the directory filter and the
// specialty ids accepted at registration.
func (u *doctorUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	db := u.db.WithContext(ctx)

	specialties, err := u.specialtyRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}
