package repository

import (
	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type achievementRepository struct{}

func NewAchievementRepository() domainRepo.AchievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) Create(db *gorm.DB, achievement *entity.Achievement) error {
	return db.Create(achievement).Error
}

func (r *achievementRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	err := db.Where("doctor_id = ?", doctorID).Order("id ASC").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) error {
	return db.Where("doctor_id = ?", doctorID).Delete(&entity.Achievement{}).Error
}
