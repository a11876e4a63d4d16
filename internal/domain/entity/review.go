package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorReview is a patient rating for a doctor, 1 (worst) to 5 (best)
type DoctorReview struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ReviewerID *uuid.UUID `gorm:"type:uuid" json:"reviewer_id,omitempty"`
	Rating     int        `gorm:"type:smallint;not null" json:"rating"`
	Comment    string     `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Doctor   DoctorProfile `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Reviewer *User         `gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
}

func (DoctorReview) TableName() string {
	return "doctor_reviews"
}
