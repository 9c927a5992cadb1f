package models

import "fmt"

// Gender enum
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient represents a registered patient of the clinic.
// Patients are never deleted; correcting a record goes through update only.
type Patient struct {
	BaseModel
	PatientCode       string `gorm:"uniqueIndex;size:20;not null" json:"patientCode"`
	FullName          string `gorm:"size:255;not null" json:"fullName"`
	Nickname          string `gorm:"size:100" json:"nickname,omitempty"`
	Gender            Gender `gorm:"size:10;not null" json:"gender"`
	DateOfBirth       string `gorm:"size:10;not null" json:"dateOfBirth"` // YYYY-MM-DD
	Address           string `gorm:"size:255;not null" json:"address"`
	MobileNumber      string `gorm:"size:30;not null;index" json:"mobileNumber"`
	Email             string `gorm:"size:255" json:"email,omitempty"`
	BloodGroup        string `gorm:"size:10" json:"bloodGroup,omitempty"`
	Allergies         string `gorm:"type:text" json:"allergies,omitempty"`
	ChronicConditions string `gorm:"type:text" json:"chronicConditions,omitempty"`
	EmergencyContact  string `gorm:"size:255" json:"emergencyContact,omitempty"`
	InsuranceInfo     string `gorm:"size:255" json:"insuranceInfo,omitempty"`
	ReferralSource    string `gorm:"size:255" json:"referralSource,omitempty"`

	// Relations (not always preloaded)
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
	Treatments    []Treatment    `gorm:"foreignKey:PatientID" json:"-"`
	LabWorkOrders []LabWorkOrder `gorm:"foreignKey:PatientID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"-"`
	LedgerEntries []PaymentEntry `gorm:"foreignKey:PatientID" json:"-"`
}

// PatientRef is the shallow patient join embedded in appointment, treatment
// and lab work listings.
type PatientRef struct {
	ID           string `json:"id"`
	PatientCode  string `json:"patientCode"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
}

// Ref returns the shallow join projection of the patient.
func (p *Patient) Ref() PatientRef {
	return PatientRef{
		ID:           p.ID,
		PatientCode:  p.PatientCode,
		FullName:     p.FullName,
		MobileNumber: p.MobileNumber,
	}
}

// NextPatientCode builds the human-readable code for the n-th registration.
// The code is assigned once at creation and never changed afterwards.
func NextPatientCode(sequence int64) string {
	return fmt.Sprintf("PT-%04d", sequence)
}
