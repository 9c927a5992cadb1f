package models

// LedgerEntryType distinguishes money owed from money received
type LedgerEntryType string

const (
	LedgerCharge  LedgerEntryType = "charge"
	LedgerPayment LedgerEntryType = "payment"
)

// PaymentEntry is one row of a patient's append-only ledger. Entries are
// never updated or deleted; the balance is always derived as
// sum(charges) - sum(payments).
type PaymentEntry struct {
	BaseModel
	PatientID   string          `gorm:"size:36;index;not null" json:"patientId"`
	TreatmentID string          `gorm:"size:36;index" json:"treatmentId,omitempty"`
	EntryType   LedgerEntryType `gorm:"size:10;not null" json:"entryType"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description,omitempty"`
	EntryDate   string          `gorm:"size:10;not null" json:"entryDate"` // YYYY-MM-DD
}
