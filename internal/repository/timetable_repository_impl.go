package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type timetableRepository struct{}

func NewTimetableRepository() domainRepo.TimetableRepository {
	return &timetableRepository{}
}

func (r *timetableRepository) Create(db *gorm.DB, entry *entity.TimetableEntry) error {
	return db.Create(entry).Error
}

func (r *timetableRepository) FindByID(db *gorm.DB, id int64) (*entity.TimetableEntry, error) {
	var entry entity.TimetableEntry
	err := db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimetableEntry, error) {
	var entries []entity.TimetableEntry
	err := db.Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timetableRepository) Update(db *gorm.DB, entry *entity.TimetableEntry) error {
	return db.Save(entry).Error
}

func (r *timetableRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TimetableEntry{})
	return result.RowsAffected, result.Error
}
