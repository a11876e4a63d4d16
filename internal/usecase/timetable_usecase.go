package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	"go-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotExists     = errors.New("timetable slot already exists")
	ErrSlotNotFound   = errors.New("timetable entry not found")
	ErrNotSlotOwner   = errors.New("timetable entry belongs to another doctor")
	ErrInvalidWeekday = errors.New("day of week must be between 0 and 6")
)

type TimetableUsecase interface {
	GetMyTimetable(ctx context.Context, userID uuid.UUID) (*dto.TimetableListResponse, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateTimetableEntryRequest) (*dto.TimetableEntryResponse, error)
	UpdateEntry(ctx context.Context, userID uuid.UUID, entryID int64, req *dto.UpdateTimetableEntryRequest) (*dto.TimetableEntryResponse, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, entryID int64) error
}

type timetableUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorProfileRepository
	timetableRepo repository.TimetableRepository
	auditService  service.AuditService
}

func NewTimetableUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	timetableRepo repository.TimetableRepository,
	auditService service.AuditService,
) TimetableUsecase {
	return &timetableUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		timetableRepo: timetableRepo,
		auditService:  auditService,
	}
}

// resolveDoctor maps the caller's user id to their doctor profile. Every
// timetable operation is keyed to the caller, never to a client-supplied
// doctor id.
func (u *timetableUsecase) resolveDoctor(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by user ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrProfileNotFound
	}
	return doctor, nil
}

func (u *timetableUsecase) GetMyTimetable(ctx context.Context, userID uuid.UUID) (*dto.TimetableListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(db, userID)
	if err != nil {
		return nil, err
	}

	entries, err := u.timetableRepo.FindByDoctorID(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find timetable entries: %+v", err)
		return nil, err
	}

	return &dto.TimetableListResponse{
		Entries: converter.TimetableEntriesToResponses(entries),
		Total:   len(entries),
	}, nil
}

func (u *timetableUsecase) CreateEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateTimetableEntryRequest) (*dto.TimetableEntryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.resolveDoctor(tx, userID)
	if err != nil {
		return nil, err
	}

	day := entity.Weekday(*req.DayOfWeek)
	if !day.IsValid() {
		return nil, ErrInvalidWeekday
	}

	entry := &entity.TimetableEntry{
		DoctorID:  doctor.ID,
		DayOfWeek: day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := u.timetableRepo.Create(tx, entry); err != nil {
		if isDuplicateKeyError(err, "idx_timetable_slot") {
			return nil, ErrSlotExists
		}
		u.log.Warnf("Failed to create timetable entry: %+v", err)
		return nil, err
	}

	// Audit log - slot created
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionSlotCreate, "timetable_entry", doctor.ID.String(), converter.TimetableEntryToResponse(entry)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TimetableEntryToResponse(entry), nil
}

func (u *timetableUsecase) UpdateEntry(ctx context.Context, userID uuid.UUID, entryID int64, req *dto.UpdateTimetableEntryRequest) (*dto.TimetableEntryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.resolveDoctor(tx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := u.timetableRepo.FindByID(tx, entryID)
	if err != nil {
		u.log.Warnf("Failed to find timetable entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrSlotNotFound
	}
	if entry.DoctorID != doctor.ID {
		return nil, ErrNotSlotOwner
	}

	old := converter.TimetableEntryToResponse(entry)

	if req.DayOfWeek != nil {
		day := entity.Weekday(*req.DayOfWeek)
		if !day.IsValid() {
			return nil, ErrInvalidWeekday
		}
		entry.DayOfWeek = day
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = *req.EndTime
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := u.timetableRepo.Update(tx, entry); err != nil {
		if isDuplicateKeyError(err, "idx_timetable_slot") {
			return nil, ErrSlotExists
		}
		u.log.Warnf("Failed to update timetable entry: %+v", err)
		return nil, err
	}

	// Audit log - slot updated
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionSlotUpdate, "timetable_entry", doctor.ID.String(), old, converter.TimetableEntryToResponse(entry)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TimetableEntryToResponse(entry), nil
}

func (u *timetableUsecase) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.resolveDoctor(tx, userID)
	if err != nil {
		return err
	}

	entry, err := u.timetableRepo.FindByID(tx, entryID)
	if err != nil {
		u.log.Warnf("Failed to find timetable entry: %+v", err)
		return err
	}
	if entry == nil {
		return ErrSlotNotFound
	}
	if entry.DoctorID != doctor.ID {
		return ErrNotSlotOwner
	}

	if _, err := u.timetableRepo.Delete(tx, entryID); err != nil {
		u.log.Warnf("Failed to delete timetable entry: %+v", err)
		return err
	}

	// Audit log - slot deleted
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionSlotDelete, "timetable_entry", doctor.ID.String(), converter.TimetableEntryToResponse(entry)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
