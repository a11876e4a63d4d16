package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the role tag carried by a user. Administrators have no role.
type Role string

const (
	RoleDoctor       Role = "DOCTOR"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleNone         Role = ""
)

// IsValid reports whether the role is one of the registerable roles.
// The empty role is reserved for administrator accounts and is never
// accepted by registration.
func (r Role) IsValid() bool {
	return r == RoleDoctor || r == RoleReceptionist
}

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(15);not null;default:'';index" json:"role"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile       *DoctorProfile       `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfile `gorm:"foreignKey:UserID" json:"receptionist_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the user carries the doctor role
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsReceptionist checks if the user carries the receptionist role
func (u *User) IsReceptionist() bool {
	return u.Role == RoleReceptionist
}
