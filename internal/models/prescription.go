package models

// MedicineFrequency is the fixed set of dosing frequencies
type MedicineFrequency string

const (
	FreqOnceDaily       MedicineFrequency = "once_daily"
	FreqTwiceDaily      MedicineFrequency = "twice_daily"
	FreqThreeTimesDaily MedicineFrequency = "three_times_daily"
	FreqFourTimesDaily  MedicineFrequency = "four_times_daily"
	FreqEverySixHours   MedicineFrequency = "every_6_hours"
	FreqEveryEightHours MedicineFrequency = "every_8_hours"
	FreqAsNeeded        MedicineFrequency = "as_needed"
	FreqBeforeBed       MedicineFrequency = "before_bed"
)

// Prescription represents a medication list issued to a patient for a
// diagnosis.
type Prescription struct {
	BaseModel
	PatientID string `gorm:"size:36;index;not null" json:"patientId"`
	Diagnosis string `gorm:"size:255;not null" json:"diagnosis"`
	Date      string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Notes     string `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient   Patient         `gorm:"foreignKey:PatientID" json:"-"`
	Medicines []MedicineEntry `gorm:"foreignKey:PrescriptionID" json:"medicines"`
}

// MedicineEntry is one medicine line on a prescription
type MedicineEntry struct {
	BaseModel
	PrescriptionID string            `gorm:"size:36;index;not null" json:"prescriptionId"`
	Name           string            `gorm:"size:255;not null" json:"name"`
	Dosage         string            `gorm:"size:100;not null" json:"dosage"`
	Frequency      MedicineFrequency `gorm:"size:30;not null" json:"frequency"`
	Duration       string            `gorm:"size:100;not null" json:"duration"`
	Instructions   string            `gorm:"size:255" json:"instructions,omitempty"`
}
