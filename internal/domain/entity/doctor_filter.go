package entity

// DoctorFilter is a domain-level filter for the public doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty string // Matches main specialty or any additional specialty (ILIKE)
	Name      string // Filter by doctor username or email (ILIKE)
	Active    *bool  // Filter by active flag when set
}
