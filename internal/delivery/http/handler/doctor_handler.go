package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/delivery/http/middleware"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"
	"go-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

// GetAllDoctors handles the public doctor directory
// @Summary List doctors
// @Description List doctors, optionally filtered by specialty, name, and active state
// @Tags Doctors
// @Produce json
// @Param specialty query string false "Specialty name, case-insensitive substring"
// @Param name query string false "Doctor name substring"
// @Param active query bool false "Active state"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	filter := &dto.DoctorFilterRequest{
		Specialty: r.URL.Query().Get("specialty"),
		Name:      r.URL.Query().Get("name"),
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid active filter", nil)
			return
		}
		filter.Active = &active
	}

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetSpecialties handles the public specialty catalog
// @Summary List specialties
// @Description List all specialties available for filtering and registration
// @Tags Doctors
// @Produce json
// @Success 200 {object} response.Response
// @Router /specialties [get]
func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.doctorUsecase.GetSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// GetDoctor handles getting a doctor by ID
// @Summary Get doctor
// @Description Get a doctor's public profile by ID
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetDoctorReviews handles listing a doctor's reviews
// @Summary List doctor reviews
// @Description List all reviews for a doctor
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/reviews [get]
func (h *DoctorHandler) GetDoctorReviews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	reviews, err := h.reviewUsecase.GetDoctorReviews(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get reviews")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// CreateReview handles posting a review for a doctor
// @Summary Create doctor review
// @Description Post a rating and comment for a doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/reviews [post]
func (h *DoctorHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// Reviewer is recorded when authenticated
	var reviewerID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		reviewerID = &userID
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), id, reviewerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}
