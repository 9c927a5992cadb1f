package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
	"dental-clinic-server/internal/views"
)

// PaymentHandler handles patient ledger requests. The ledger is
// append-only; the balance is derived, never stored.
type PaymentHandler struct {
	DB *gorm.DB
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db}
}

// CreatePaymentEntryRequest represents the request body for appending a
// ledger entry.
type CreatePaymentEntryRequest struct {
	PatientID   string                 `json:"patientId" binding:"required,uuid"`
	TreatmentID string                 `json:"treatmentId" binding:"omitempty,uuid"`
	EntryType   models.LedgerEntryType `json:"entryType" binding:"required,oneof=charge payment"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description"`
	EntryDate   string                 `json:"entryDate" binding:"required"`
}

// CreatePaymentEntry handles appending a charge or payment to a patient's
// ledger.
func (h *PaymentHandler) CreatePaymentEntry(c *gin.Context) {
	var req CreatePaymentEntryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.EntryDate) {
		utils.BadRequest(c, "Invalid entry date. Please use YYYY-MM-DD format")
		return
	}

	// Verify patient exists
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	entry := models.PaymentEntry{
		PatientID:   req.PatientID,
		TreatmentID: req.TreatmentID,
		EntryType:   req.EntryType,
		Amount:      req.Amount,
		Description: req.Description,
		EntryDate:   req.EntryDate,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		utils.InternalServerError(c, "Failed to append ledger entry: "+err.Error())
		return
	}

	utils.Created(c, "Ledger entry recorded successfully", entry)
}

// PatientLedger is the ledger listing with its derived balance.
type PatientLedger struct {
	Entries []models.PaymentEntry `json:"entries"`
	Balance float64               `json:"balance"`
}

// GetPatientLedger handles fetching a patient's ledger entries and derived
// balance.
func (h *PaymentHandler) GetPatientLedger(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var entries []models.PaymentEntry
	if err := h.DB.Where("patient_id = ?", patientID).
		Order("entry_date asc, created_at asc").
		Find(&entries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch ledger entries: "+err.Error())
		return
	}

	ledger := PatientLedger{
		Entries: entries,
		Balance: views.Balance(entries),
	}

	utils.Success(c, "Patient ledger fetched successfully", ledger)
}
