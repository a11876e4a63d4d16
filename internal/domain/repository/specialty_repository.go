package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
}
