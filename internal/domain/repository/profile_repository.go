package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	// ReplaceSpecialties swaps the many-to-many specialty set wholesale.
	ReplaceSpecialties(db *gorm.DB, profile *entity.DoctorProfile, specialties []entity.Specialty) error
}

type ReceptionistProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ReceptionistProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ReceptionistProfile, error)
	Update(db *gorm.DB, profile *entity.ReceptionistProfile) error
}

// ProfileRepository resolves the profile variant owned by a user. Two direct
// indexed lookups, doctor first; returns nil when the user owns neither.
type ProfileRepository interface {
	ResolveByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
}
