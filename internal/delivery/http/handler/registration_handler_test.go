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

	"github.com/stretchr/testify/assert"
)

type stubRegistrationUsecase struct {
	result *dto.RegisterResponse
	err    error
	gotReq *dto.RegisterRequest
}

func (s *stubRegistrationUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func registerBody() string {
	return `{
		"user": {
			"username": "drsmith",
			"email": "drsmith@clinic.test",
			"password": "secret123",
			"role": "DOCTOR"
		},
		"doctor_profile": {
			"main_specialty": "Cardiology"
		}
	}`
}

func TestRegisterSuccess(t *testing.T) {
	stub := &stubRegistrationUsecase{result: &dto.RegisterResponse{}}
	h := NewRegistrationHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody()))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, stub.gotReq)
	assert.Equal(t, "drsmith", stub.gotReq.User.Username)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestRegisterInvalidBody(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidationFailure(t *testing.T) {
	stub := &stubRegistrationUsecase{}
	h := NewRegistrationHandler(stub, validator.NewValidator())

	body := `{"user": {"username": "ab", "email": "bad", "password": "x", "role": "ADMIN"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotReq)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotNil(t, resp["error"])
}

func TestRegisterConflicts(t *testing.T) {
	conflicts := []error{
		usecase.ErrUsernameExists,
		usecase.ErrEmailExists,
		usecase.ErrLicenseExists,
	}
	for _, conflictErr := range conflicts {
		h := NewRegistrationHandler(&stubRegistrationUsecase{err: conflictErr}, validator.NewValidator())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody()))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code, conflictErr.Error())
	}
}

func TestRegisterProfileMismatch(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationUsecase{err: usecase.ErrProfileMismatch}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody()))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
