package entity

// ProfileKind discriminates the profile variant owned by a user.
type ProfileKind string

const (
	ProfileKindDoctor       ProfileKind = "doctor"
	ProfileKindReceptionist ProfileKind = "receptionist"
)

// ProfileBase holds the attributes shared by every profile variant.
// Embedded into the concrete profile tables.
type ProfileBase struct {
	Avatar      string `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	PhoneNumber string `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address     string `gorm:"type:text" json:"address,omitempty"`
	Bio         string `gorm:"type:text" json:"bio,omitempty"`
}

// Profile is the tagged union over the profile variants. Exactly one of
// Doctor/Receptionist is non-nil and matches Kind. A role-bearing user owns
// exactly one variant, resolved by a direct reverse-relation lookup.
type Profile struct {
	Kind         ProfileKind
	Doctor       *DoctorProfile
	Receptionist *ReceptionistProfile
}

// User returns the owning user of whichever variant is set.
func (p *Profile) User() *User {
	switch p.Kind {
	case ProfileKindDoctor:
		return &p.Doctor.User
	case ProfileKindReceptionist:
		return &p.Receptionist.User
	}
	return nil
}
