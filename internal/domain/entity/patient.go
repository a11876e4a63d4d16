package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient. Email is the natural key used to
// deduplicate records created through the public booking intake.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:PatientID" json:"bookings,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns "First Last" for display
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
