package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubBookingUsecase struct {
	usecase.BookingUsecase

	publicResult *dto.BookingResponse
	publicErr    error
	gotPublic    *dto.PublicBookingRequest
}

func (s *stubBookingUsecase) CreatePublicBooking(ctx context.Context, req *dto.PublicBookingRequest) (*dto.BookingResponse, error) {
	s.gotPublic = req
	if s.publicErr != nil {
		return nil, s.publicErr
	}
	return s.publicResult, nil
}

func publicBookingBody(doctorID uuid.UUID) string {
	return `{
		"doctor": "` + doctorID.String() + `",
		"scheduled_at": "2026-09-14T10:30:00Z",
		"notes": "first visit",
		"patient": {
			"first_name": "Jane",
			"last_name": "Doe",
			"email": "jane.doe@example.com"
		}
	}`
}

func TestCreatePublicBookingSuccess(t *testing.T) {
	doctorID := uuid.New()
	stub := &stubBookingUsecase{publicResult: &dto.BookingResponse{ID: uuid.New()}}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(publicBookingBody(doctorID)))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, stub.gotPublic)
	assert.Equal(t, doctorID, stub.gotPublic.DoctorID)
	assert.Equal(t, "jane.doe@example.com", stub.gotPublic.Patient.Email)
}

func TestCreatePublicBookingMissingPatient(t *testing.T) {
	stub := &stubBookingUsecase{}
	h := NewBookingHandler(stub, validator.NewValidator())

	body := `{"doctor": "` + uuid.New().String() + `", "scheduled_at": "2026-09-14T10:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotPublic)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errMap, ok := resp["error"].(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, errMap, "patient")
}

func TestCreatePublicBookingInvalidPatientEmail(t *testing.T) {
	stub := &stubBookingUsecase{}
	h := NewBookingHandler(stub, validator.NewValidator())

	body := `{
		"doctor": "` + uuid.New().String() + `",
		"scheduled_at": "2026-09-14T10:30:00Z",
		"patient": {"first_name": "Jane", "last_name": "Doe", "email": "not-an-email"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotPublic)
}

func TestCreatePublicBookingPatientFieldErrorKeys(t *testing.T) {
	stub := &stubBookingUsecase{}
	h := NewBookingHandler(stub, validator.NewValidator())

	body := `{
		"doctor": "` + uuid.New().String() + `",
		"scheduled_at": "2026-09-14T10:30:00Z",
		"patient": {"first_name": "Jane", "last_name": "Doe"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotPublic)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errMap, ok := resp["error"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "email is required", errMap["patient.email"])
	assert.NotContains(t, errMap, "Email")
}

func TestCreatePublicBookingDoctorNotFound(t *testing.T) {
	stub := &stubBookingUsecase{publicErr: usecase.ErrDoctorNotFound}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(publicBookingBody(uuid.New())))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePublicBookingInactiveDoctor(t *testing.T) {
	stub := &stubBookingUsecase{publicErr: usecase.ErrDoctorNotActive}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/public", strings.NewReader(publicBookingBody(uuid.New())))
	rec := httptest.NewRecorder()
	h.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
