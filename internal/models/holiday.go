package models

// ClinicHoliday represents a date the clinic does not take appointments.
// The clinic_holidays table is the single source of truth for the holiday
// predicate; the schedule package keeps an in-memory cache of it.
type ClinicHoliday struct {
	BaseModel
	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Name string `gorm:"size:255" json:"name,omitempty"`
}

func (ClinicHoliday) TableName() string {
	return "clinic_holidays"
}
