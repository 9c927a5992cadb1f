package models

// TreatmentStatus represents the status of a treatment
type TreatmentStatus string

const (
	TreatmentOngoing   TreatmentStatus = "ongoing"
	TreatmentCompleted TreatmentStatus = "completed"
	TreatmentPaused    TreatmentStatus = "paused"
)

// ToothSurface tags where on a tooth the work applies
type ToothSurface string

const (
	SurfaceOcclusal ToothSurface = "occlusal"
	SurfaceMesial   ToothSurface = "mesial"
	SurfaceDistal   ToothSurface = "distal"
	SurfaceBuccal   ToothSurface = "buccal"
	SurfaceLingual  ToothSurface = "lingual"
	SurfaceCervical ToothSurface = "cervical"
	SurfaceRoot     ToothSurface = "root"
	SurfaceFull     ToothSurface = "full"
)

// ValidSurface reports whether s is one of the eight surface tags.
func ValidSurface(s ToothSurface) bool {
	switch s {
	case SurfaceOcclusal, SurfaceMesial, SurfaceDistal, SurfaceBuccal,
		SurfaceLingual, SurfaceCervical, SurfaceRoot, SurfaceFull:
		return true
	}
	return false
}

// Treatment represents a record of clinical work performed in one session.
type Treatment struct {
	BaseModel
	PatientID           string          `gorm:"size:36;index;not null" json:"patientId"`
	AppointmentID       string          `gorm:"size:36;index" json:"appointmentId,omitempty"`
	TreatmentDate       string          `gorm:"size:10;index;not null" json:"treatmentDate"` // YYYY-MM-DD
	Procedure           string          `gorm:"size:255;not null" json:"procedure"`
	MaterialsUsed       string          `gorm:"type:text" json:"materialsUsed,omitempty"`
	Notes               string          `gorm:"type:text" json:"notes,omitempty"`
	Status              TreatmentStatus `gorm:"size:20;default:'ongoing'" json:"status"`
	NextAppointmentDate string          `gorm:"size:10" json:"nextAppointmentDate,omitempty"`
	Cost                *float64        `json:"cost,omitempty"`

	// Relations
	Patient         Patient          `gorm:"foreignKey:PatientID" json:"-"`
	ToothSelections []ToothSelection `gorm:"foreignKey:TreatmentID" json:"toothSelections,omitempty"`
}

// ToothSelection identifies one affected tooth and the surfaces worked on.
// Tooth numbers follow the universal 1..32 numbering scheme; surfaces are
// stored comma-joined in a single column.
type ToothSelection struct {
	BaseModel
	TreatmentID string `gorm:"size:36;index;not null" json:"treatmentId"`
	ToothNumber int    `gorm:"not null" json:"toothNumber"`
	Surfaces    string `gorm:"size:100;not null" json:"surfaces"`
}
