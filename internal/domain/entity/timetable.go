package entity

import "github.com/google/uuid"

// Weekday is a day-of-week value, Monday = 0 through Sunday = 6
type Weekday int

const (
	WeekdayMonday Weekday = iota
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
	WeekdaySunday
)

// IsValid reports whether the weekday is within the 0-6 range
func (d Weekday) IsValid() bool {
	return d >= WeekdayMonday && d <= WeekdaySunday
}

// TimetableEntry is a weekly availability slot for a doctor.
// The (doctor, day, start, end) tuple is unique.
type TimetableEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_timetable_slot" json:"doctor_id"`
	DayOfWeek Weekday   `gorm:"not null;uniqueIndex:idx_timetable_slot" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null;uniqueIndex:idx_timetable_slot" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null;uniqueIndex:idx_timetable_slot" json:"end_time"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TimetableEntry) TableName() string {
	return "timetable_entries"
}
