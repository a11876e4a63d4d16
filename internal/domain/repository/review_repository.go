package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.DoctorReview) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorReview, error)
}
