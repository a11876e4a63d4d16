package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	"go-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrDoctorNotActive = errors.New("doctor is not accepting bookings")

	// A concurrent intake won the patient email insert; the losing
	// transaction rolls back and retries once
	errPatientEmailRace = errors.New("patient email conflict during get-or-create")
)

// DateOfBirth placeholder when the public intake omits it. Matches the
// sentinel value used for records migrated from the paper archive.
var placeholderDateOfBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type BookingUsecase interface {
	GetBookings(ctx context.Context, userID uuid.UUID) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
	CreateBooking(ctx context.Context, actorID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	CreatePublicBooking(ctx context.Context, req *dto.PublicBookingRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorProfileRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorProfileRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// bookingScope reports whether reads must be narrowed to a single doctor.
// Doctors see only their own bookings; receptionists, admins, and users
// without a profile see everything.
func bookingScope(profile *entity.Profile) (uuid.UUID, bool) {
	if profile != nil && profile.Kind == entity.ProfileKindDoctor {
		return profile.Doctor.ID, true
	}
	return uuid.Nil, false
}

// GetBookings lists bookings visible to the caller under the read scope.
func (u *bookingUsecase) GetBookings(ctx context.Context, userID uuid.UUID) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.profileRepo.ResolveByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to resolve profile: %+v", err)
		return nil, err
	}

	var bookings []entity.Booking
	if doctorID, scoped := bookingScope(profile); scoped {
		bookings, err = u.bookingRepo.FindByDoctorID(db, doctorID)
	} else {
		bookings, err = u.bookingRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find booking by ID: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	profile, err := u.profileRepo.ResolveByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to resolve profile: %+v", err)
		return nil, err
	}

	// An out-of-scope booking is indistinguishable from a missing one
	if doctorID, scoped := bookingScope(profile); scoped && booking.DoctorID != doctorID {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) CreateBooking(ctx context.Context, actorID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	booking := &entity.Booking{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
		Total:       decimal.Zero,
	}
	if req.Total != nil {
		booking.Total = *req.Total
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	// Audit log - booking created
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Patient = *patient
	booking.Doctor = *doctor
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) UpdateBooking(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking by ID: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	old := converter.BookingToResponse(booking)

	if req.ScheduledAt != nil {
		booking.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.Total != nil {
		booking.Total = *req.Total
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking: %+v", err)
		return nil, err
	}

	// Audit log - booking updated
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingUpdate, "booking", booking.ID.String(), old, converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) DeleteBooking(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking by ID: %+v", err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if _, err := u.bookingRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete booking: %+v", err)
		return err
	}

	// Audit log - booking deleted
	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionBookingDelete, "booking", id.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// CreatePublicBooking is the unauthenticated intake. The embedded patient is
// matched by email and created when absent; the booking then targets an
// active doctor. Patient and booking commit together, so a failed booking
// never strands a freshly created patient row.
func (u *bookingUsecase) CreatePublicBooking(ctx context.Context, req *dto.PublicBookingRequest) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsActive {
		return nil, ErrDoctorNotActive
	}

	dob := placeholderDateOfBirth
	if req.Patient.DateOfBirth != "" {
		dob, err = parseDateOfBirth(req.Patient.DateOfBirth)
		if err != nil {
			return nil, err
		}
	}

	// Losing the patient email race aborts the whole transaction; the retry
	// reopens it and finds the concurrently committed row by email
	var booking *entity.Booking
	var patient *entity.Patient
	for attempt := 0; attempt < 2; attempt++ {
		booking, patient, err = u.insertPublicBooking(ctx, doctor, req, dob)
		if !errors.Is(err, errPatientEmailRace) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	booking.Patient = *patient
	booking.Doctor = *doctor
	return converter.BookingToResponse(booking), nil
}

// insertPublicBooking runs one attempt of the intake write inside a single
// transaction.
func (u *bookingUsecase) insertPublicBooking(ctx context.Context, doctor *entity.DoctorProfile, req *dto.PublicBookingRequest, dob time.Time) (*entity.Booking, *entity.Patient, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.getOrCreatePatient(tx, req.Patient, dob)
	if err != nil {
		return nil, nil, err
	}

	booking := &entity.Booking{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
		Total:       decimal.Zero,
	}
	if req.Total != nil {
		booking.Total = *req.Total
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, nil, err
	}

	// Audit log - public intake has no acting user
	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionBookingPublic, "booking", booking.ID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, nil, err
	}

	return booking, patient, nil
}

// getOrCreatePatient deduplicates by email. Existing records are reused
// untouched, even when the submitted names differ. A concurrent insert on the
// same email surfaces as errPatientEmailRace so the caller can retry in a
// fresh transaction.
func (u *bookingUsecase) getOrCreatePatient(tx *gorm.DB, input *dto.PublicPatientInput, dob time.Time) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByEmail(tx, input.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dob,
		Email:       input.Email,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, errPatientEmailRace
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	return patient, nil
}
