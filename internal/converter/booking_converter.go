package converter

import (
	"github.com/google/uuid"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:          booking.ID,
		PatientID:   booking.PatientID,
		DoctorID:    booking.DoctorID,
		ScheduledAt: booking.ScheduledAt,
		Notes:       booking.Notes,
		Total:       booking.Total,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}

	// Include related records if preloaded
	if booking.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&booking.Patient)
	}
	if booking.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&booking.Doctor)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
