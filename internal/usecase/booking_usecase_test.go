package usecase

import (
	"errors"
	"io"
	"testing"
	"time"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBookingScope(t *testing.T) {
	doctorID := uuid.New()

	t.Run("doctor is scoped to own bookings", func(t *testing.T) {
		profile := &entity.Profile{
			Kind:   entity.ProfileKindDoctor,
			Doctor: &entity.DoctorProfile{ID: doctorID},
		}
		id, scoped := bookingScope(profile)
		assert.True(t, scoped)
		assert.Equal(t, doctorID, id)
	})

	t.Run("receptionist sees everything", func(t *testing.T) {
		profile := &entity.Profile{
			Kind:         entity.ProfileKindReceptionist,
			Receptionist: &entity.ReceptionistProfile{},
		}
		_, scoped := bookingScope(profile)
		assert.False(t, scoped)
	})

	t.Run("profileless account sees everything", func(t *testing.T) {
		_, scoped := bookingScope(nil)
		assert.False(t, scoped)
	})
}

func TestParseDateOfBirth(t *testing.T) {
	dob, err := parseDateOfBirth("1987-06-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1987, time.June, 15, 0, 0, 0, 0, time.UTC), dob)

	_, err = parseDateOfBirth("15/06/1987")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = parseDateOfBirth("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestPlaceholderDateOfBirth(t *testing.T) {
	assert.Equal(t, 1900, placeholderDateOfBirth.Year())
	assert.Equal(t, time.January, placeholderDateOfBirth.Month())
	assert.Equal(t, 1, placeholderDateOfBirth.Day())
}

type stubPatientRepo struct {
	repository.PatientRepository

	existing  *entity.Patient
	createErr error
	created   []*entity.Patient
}

func (s *stubPatientRepo) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	if s.existing != nil && s.existing.Email == email {
		return s.existing, nil
	}
	return nil, nil
}

func (s *stubPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if s.createErr != nil {
		return s.createErr
	}
	patient.ID = uuid.New()
	s.created = append(s.created, patient)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGetOrCreatePatientReusesExisting(t *testing.T) {
	existing := &entity.Patient{
		ID:        uuid.New(),
		FirstName: "Janet",
		LastName:  "Original",
		Email:     "jane.doe@example.com",
	}
	repo := &stubPatientRepo{existing: existing}
	u := &bookingUsecase{log: quietLogger(), patientRepo: repo}

	input := &dto.PublicPatientInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"}
	patient, err := u.getOrCreatePatient(nil, input, placeholderDateOfBirth)

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, patient.ID)
	// The stored record wins over the submitted names
	assert.Equal(t, "Janet", patient.FirstName)
	assert.Empty(t, repo.created)
}

func TestGetOrCreatePatientCreatesWhenMissing(t *testing.T) {
	repo := &stubPatientRepo{}
	u := &bookingUsecase{log: quietLogger(), patientRepo: repo}

	dob := time.Date(1987, time.June, 15, 0, 0, 0, 0, time.UTC)
	input := &dto.PublicPatientInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"}
	patient, err := u.getOrCreatePatient(nil, input, dob)

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, "jane.doe@example.com", patient.Email)
	assert.Equal(t, dob, patient.DateOfBirth)
}

func TestGetOrCreatePatientLostEmailRace(t *testing.T) {
	repo := &stubPatientRepo{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"},
	}
	u := &bookingUsecase{log: quietLogger(), patientRepo: repo}

	input := &dto.PublicPatientInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"}
	_, err := u.getOrCreatePatient(nil, input, placeholderDateOfBirth)

	assert.ErrorIs(t, err, errPatientEmailRace)
}

func TestGetOrCreatePatientCreateFailure(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &stubPatientRepo{createErr: boom}
	u := &bookingUsecase{log: quietLogger(), patientRepo: repo}

	input := &dto.PublicPatientInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"}
	_, err := u.getOrCreatePatient(nil, input, placeholderDateOfBirth)

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errPatientEmailRace)
}
