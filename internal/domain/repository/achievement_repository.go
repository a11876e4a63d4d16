package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	Create(db *gorm.DB, achievement *entity.Achievement) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Achievement, error)
	DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) error
}
