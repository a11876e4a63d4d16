package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is an appointment linking a patient to a doctor. Deleting either
// side cascades to the booking. Total is an opaque amount, never computed.
type Booking struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt time.Time       `gorm:"not null;index" json:"scheduled_at"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient       `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
