package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"
	"go-clinic-backend/pkg/validator"
)

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

// Register handles combined user and profile registration
// @Summary Register a staff account
// @Description Create a user and its role-matching profile in one atomic request
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.registrationUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRole, usecase.ErrProfileMismatch, usecase.ErrInvalidAchievement:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSpecialtyNotFound:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrUsernameExists, usecase.ErrEmailExists, usecase.ErrLicenseExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Registered successfully", result)
}
