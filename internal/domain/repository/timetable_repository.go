package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimetableRepository interface {
	Create(db *gorm.DB, entry *entity.TimetableEntry) error
	FindByID(db *gorm.DB, id int64) (*entity.TimetableEntry, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimetableEntry, error)
	Update(db *gorm.DB, entry *entity.TimetableEntry) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
