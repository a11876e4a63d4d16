package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty is a catalog entry attachable to doctors beyond their main specialty
type Specialty struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// DoctorProfile represents doctor-specific profile data with clinical credentials
type DoctorProfile struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ProfileBase       `gorm:"embedded"`
	MainSpecialty     string  `gorm:"type:varchar(100);not null;index" json:"main_specialty"`
	Qualifications    string  `gorm:"type:varchar(255)" json:"qualifications,omitempty"`
	LicenseNumber     *string `gorm:"type:varchar(50);uniqueIndex" json:"license_number,omitempty"`
	YearsOfExperience int     `gorm:"not null;default:0" json:"years_of_experience"`
	IsActive          bool    `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User             User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Specialties      []Specialty      `gorm:"many2many:doctor_specialties" json:"specialties,omitempty"`
	Achievements     []Achievement    `gorm:"foreignKey:DoctorID" json:"achievements,omitempty"`
	Reviews          []DoctorReview   `gorm:"foreignKey:DoctorID" json:"reviews,omitempty"`
	TimetableEntries []TimetableEntry `gorm:"foreignKey:DoctorID" json:"timetable_entries,omitempty"`
	Bookings         []Booking        `gorm:"foreignKey:DoctorID" json:"bookings,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// AverageRating computes the mean of the loaded reviews, 0 when there are none.
// Derived on read, never stored.
func (d *DoctorProfile) AverageRating() float64 {
	if len(d.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range d.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(d.Reviews))
}
