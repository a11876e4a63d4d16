package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
