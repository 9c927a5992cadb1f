package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// AppointmentType represents how the visit was booked
type AppointmentType string

const (
	TypeRegular   AppointmentType = "regular"
	TypeEmergency AppointmentType = "emergency"
	TypeWalkIn    AppointmentType = "walk_in"
	TypeFollowUp  AppointmentType = "follow_up"
)

// Appointment represents a scheduled clinical encounter.
// Date and time are kept as separate ISO fields so the calendar view can
// sort and filter with plain string comparison.
type Appointment struct {
	BaseModel
	PatientID string            `gorm:"size:36;index;not null" json:"patientId"`
	Date      string            `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time      string            `gorm:"size:5;not null" json:"time"`        // HH:MM
	Status    AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Type      AppointmentType   `gorm:"size:20;default:'regular'" json:"type"`
	Notes     string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// AppointmentView is an appointment row enriched with the shallow patient
// join the listing endpoints return.
type AppointmentView struct {
	Appointment
	PatientRef PatientRef `json:"patient"`
}

// WithPatient pairs the appointment with its shallow patient projection.
func (a Appointment) WithPatient() AppointmentView {
	return AppointmentView{Appointment: a, PatientRef: a.Patient.Ref()}
}
