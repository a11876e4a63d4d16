package entity

import "github.com/google/uuid"

// AchievementType classifies a doctor achievement record
type AchievementType string

const (
	AchievementEducation     AchievementType = "education"
	AchievementInternship    AchievementType = "internship"
	AchievementCertification AchievementType = "certification"
)

// IsValid reports whether the type is one of the known achievement types
func (t AchievementType) IsValid() bool {
	switch t {
	case AchievementEducation, AchievementInternship, AchievementCertification:
		return true
	}
	return false
}

// Achievement is an education/internship/certification record owned by a doctor
type Achievement struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Type        AchievementType `gorm:"type:varchar(20);not null" json:"type"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Institution string          `gorm:"type:varchar(255)" json:"institution,omitempty"`
	Year        *int            `gorm:"type:smallint" json:"year,omitempty"`
	Details     string          `gorm:"type:text" json:"details,omitempty"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}
