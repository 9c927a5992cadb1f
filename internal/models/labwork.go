package models

// LabWorkStatus represents the status of an outsourced lab order
type LabWorkStatus string

const (
	LabWorkPending    LabWorkStatus = "pending"
	LabWorkInProgress LabWorkStatus = "in_progress"
	LabWorkCompleted  LabWorkStatus = "completed"
	LabWorkDelivered  LabWorkStatus = "delivered"
)

// LabWorkType is the fixed vocabulary of prosthetic/appliance categories
type LabWorkType string

const (
	LabTypeCrown       LabWorkType = "crown"
	LabTypeBridge      LabWorkType = "bridge"
	LabTypeDenture     LabWorkType = "denture"
	LabTypeImplant     LabWorkType = "implant"
	LabTypeOrthodontic LabWorkType = "orthodontic_appliance"
	LabTypeVeneer      LabWorkType = "veneer"
	LabTypeInlayOnlay  LabWorkType = "inlay_onlay"
	LabTypeNightGuard  LabWorkType = "night_guard"
	LabTypeOther       LabWorkType = "other"
)

// LabWorkOrder represents an outsourced laboratory task tied to a patient
// and optionally to the treatment that required it. Unlike the other
// clinical entities, lab work orders can be deleted.
// "Overdue" is derived from ExpectedDate and Status, never stored.
type LabWorkOrder struct {
	BaseModel
	PatientID       string        `gorm:"size:36;index;not null" json:"patientId"`
	TreatmentID     string        `gorm:"size:36;index" json:"treatmentId,omitempty"`
	LabType         LabWorkType   `gorm:"size:30;not null" json:"labType"`
	LabName         string        `gorm:"size:255;not null" json:"labName"`
	WorkDescription string        `gorm:"type:text;not null" json:"workDescription"`
	Instructions    string        `gorm:"type:text" json:"instructions,omitempty"`
	DateSent        string        `gorm:"size:10;index;not null" json:"dateSent"` // YYYY-MM-DD
	ExpectedDate    string        `gorm:"size:10" json:"expectedDate,omitempty"`
	CompletedDate   string        `gorm:"size:10" json:"completedDate,omitempty"`
	Status          LabWorkStatus `gorm:"size:20;default:'pending'" json:"status"`
	Cost            *float64      `json:"cost,omitempty"`
	Notes           string        `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient     Patient             `gorm:"foreignKey:PatientID" json:"-"`
	Attachments []LabWorkAttachment `gorm:"foreignKey:LabWorkOrderID" json:"attachments,omitempty"`
}

// LabWorkAttachment represents a file attached to a lab work order.
// The content is kept in the database alongside its metadata; FilePath is
// the logical storage path {orderID}/{timestamp}_{originalName}.
type LabWorkAttachment struct {
	BaseModel
	LabWorkOrderID string `gorm:"size:36;index;not null" json:"labWorkOrderId"`
	FileName       string `gorm:"size:255;not null" json:"fileName"`
	FilePath       string `gorm:"size:500;not null" json:"filePath"`
	FileType       string `gorm:"size:100;not null" json:"fileType"` // MIME type
	FileSize       int64  `gorm:"not null" json:"fileSize"`
	FileData       []byte `gorm:"type:longblob;not null" json:"-"`
}
