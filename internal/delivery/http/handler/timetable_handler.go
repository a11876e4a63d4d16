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

	"github.com/gorilla/mux"
)

type TimetableHandler struct {
	timetableUsecase usecase.TimetableUsecase
	validator        *validator.CustomValidator
}

func NewTimetableHandler(timetableUsecase usecase.TimetableUsecase, validator *validator.CustomValidator) *TimetableHandler {
	return &TimetableHandler{
		timetableUsecase: timetableUsecase,
		validator:        validator,
	}
}

// GetMyTimetable handles listing the caller's weekly availability
// @Summary Get my timetable
// @Description List the authenticated doctor's weekly availability slots
// @Tags Timetable
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /me/timetable [get]
func (h *TimetableHandler) GetMyTimetable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	timetable, err := h.timetableUsecase.GetMyTimetable(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get timetable")
		}
		return
	}

	response.Success(w, http.StatusOK, "Timetable retrieved successfully", timetable)
}

// CreateEntry handles adding a weekly availability slot
// @Summary Create timetable entry
// @Description Add a weekly availability slot for the authenticated doctor
// @Tags Timetable
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTimetableEntryRequest true "Create Entry Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /me/timetable [post]
func (h *TimetableHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTimetableEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.timetableUsecase.CreateEntry(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSlotExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create timetable entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Timetable entry created successfully", entry)
}

// UpdateEntry handles updating a weekly availability slot
// @Summary Update timetable entry
// @Description Update one of the authenticated doctor's availability slots
// @Tags Timetable
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body dto.UpdateTimetableEntryRequest true "Update Entry Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /me/timetable/{id} [put]
func (h *TimetableHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid entry ID", nil)
		return
	}

	var req dto.UpdateTimetableEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.timetableUsecase.UpdateEntry(r.Context(), userID, entryID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Timetable entry not found")
		case usecase.ErrNotSlotOwner:
			response.Forbidden(w, err.Error())
		case usecase.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrSlotExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update timetable entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Timetable entry updated successfully", entry)
}

// DeleteEntry handles removing a weekly availability slot
// @Summary Delete timetable entry
// @Description Remove one of the authenticated doctor's availability slots
// @Tags Timetable
// @Security BearerAuth
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /me/timetable/{id} [delete]
func (h *TimetableHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid entry ID", nil)
		return
	}

	if err := h.timetableUsecase.DeleteEntry(r.Context(), userID, entryID); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Timetable entry not found")
		case usecase.ErrNotSlotOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete timetable entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Timetable entry deleted successfully", nil)
}
