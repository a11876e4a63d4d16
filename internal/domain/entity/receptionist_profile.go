package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceptionistProfile represents receptionist-specific profile data with shift details
type ReceptionistProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ProfileBase    `gorm:"embedded"`
	PhoneExtension *string `gorm:"type:varchar(10)" json:"phone_extension,omitempty"`
	ShiftStart     *string `gorm:"type:time" json:"shift_start,omitempty"`
	ShiftEnd       *string `gorm:"type:time" json:"shift_end,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (ReceptionistProfile) TableName() string {
	return "receptionist_profiles"
}
