package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/documents"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// PrescriptionHandler handles prescription requests. The clinic letterhead
// details are injected so document rendering never reads shared state.
type PrescriptionHandler struct {
	DB     *gorm.DB
	Clinic config.ClinicConfig
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(db *gorm.DB, clinic config.ClinicConfig) *PrescriptionHandler {
	return &PrescriptionHandler{DB: db, Clinic: clinic}
}

// MedicineEntryRequest is one medicine line on a prescription request.
type MedicineEntryRequest struct {
	Name         string                   `json:"name" binding:"required"`
	Dosage       string                   `json:"dosage" binding:"required"`
	Frequency    models.MedicineFrequency `json:"frequency" binding:"required,oneof=once_daily twice_daily three_times_daily four_times_daily every_6_hours every_8_hours as_needed before_bed"`
	Duration     string                   `json:"duration" binding:"required"`
	Instructions string                   `json:"instructions"`
}

// CreatePrescriptionRequest represents the request body for issuing a
// prescription.
type CreatePrescriptionRequest struct {
	PatientID string                 `json:"patientId" binding:"required,uuid"`
	Diagnosis string                 `json:"diagnosis" binding:"required"`
	Date      string                 `json:"date" binding:"required"`
	Notes     string                 `json:"notes"`
	Medicines []MedicineEntryRequest `json:"medicines" binding:"required,min=1,dive"`
}

// CreatePrescription handles issuing a new prescription.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.Date) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
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

	prescription := models.Prescription{
		PatientID: req.PatientID,
		Diagnosis: req.Diagnosis,
		Date:      req.Date,
		Notes:     req.Notes,
	}
	for _, m := range req.Medicines {
		prescription.Medicines = append(prescription.Medicines, models.MedicineEntry{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		})
	}

	if err := h.DB.Create(&prescription).Error; err != nil {
		utils.InternalServerError(c, "Failed to create prescription: "+err.Error())
		return
	}

	utils.Created(c, "Prescription created successfully", prescription)
}

// GetPrescriptions handles fetching prescriptions, optionally for one
// patient, newest first.
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	query := h.DB.Preload("Medicines").Order("date desc")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var prescriptions []models.Prescription
	if err := query.Find(&prescriptions).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch prescriptions: "+err.Error())
		return
	}

	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}

// GetPrescriptionByID handles fetching a single prescription with its
// medicine list.
func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	var prescription models.Prescription
	if err := h.DB.Preload("Medicines").First(&prescription, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Prescription fetched successfully", prescription)
}

// GetPrescriptionDocument handles building the export payload for a
// prescription: the structured document for the PDF collaborator plus the
// HTML string for the print collaborator.
func (h *PrescriptionHandler) GetPrescriptionDocument(c *gin.Context) {
	var prescription models.Prescription
	if err := h.DB.Preload("Medicines").First(&prescription, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", prescription.PatientID).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patient for document: "+err.Error())
		return
	}

	doc := documents.BuildPrescriptionDocument(h.Clinic, patient, prescription)
	html, err := documents.RenderPrintHTML(doc)
	if err != nil {
		utils.InternalServerError(c, "Failed to render prescription document: "+err.Error())
		return
	}

	utils.Success(c, "Prescription document built successfully", gin.H{
		"document": doc,
		"html":     html,
	})
}
