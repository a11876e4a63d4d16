package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/validator"

	"github.com/stretchr/testify/assert"
)

type stubDoctorUsecase struct {
	usecase.DoctorUsecase

	specialties    *dto.SpecialtyListResponse
	specialtiesErr error
}

func (s *stubDoctorUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	if s.specialtiesErr != nil {
		return nil, s.specialtiesErr
	}
	return s.specialties, nil
}

func TestGetSpecialties(t *testing.T) {
	stub := &stubDoctorUsecase{
		specialties: &dto.SpecialtyListResponse{
			Specialties: []dto.SpecialtyResponse{
				{ID: 1, Name: "Cardiology"},
				{ID: 2, Name: "Dermatology"},
			},
			Total: 2,
		},
	}
	h := NewDoctorHandler(stub, nil, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/specialties", nil)
	rec := httptest.NewRecorder()
	h.GetSpecialties(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(2), data["total"])
}

func TestGetSpecialtiesFailure(t *testing.T) {
	stub := &stubDoctorUsecase{specialtiesErr: errors.New("connection reset")}
	h := NewDoctorHandler(stub, nil, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/specialties", nil)
	rec := httptest.NewRecorder()
	h.GetSpecialties(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
