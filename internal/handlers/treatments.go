package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// TreatmentHandler handles treatment session requests.
type TreatmentHandler struct {
	DB *gorm.DB
}

// NewTreatmentHandler creates a new TreatmentHandler.
func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{DB: db}
}

// ToothSelectionRequest is one tooth/surfaces pair on a treatment request.
type ToothSelectionRequest struct {
	ToothNumber int      `json:"toothNumber" binding:"required,min=1,max=32"`
	Surfaces    []string `json:"surfaces" binding:"required,min=1"`
}

// CreateTreatmentRequest represents the request body for recording a
// treatment session.
type CreateTreatmentRequest struct {
	PatientID           string                  `json:"patientId" binding:"required,uuid"`
	AppointmentID       string                  `json:"appointmentId" binding:"omitempty,uuid"`
	TreatmentDate       string                  `json:"treatmentDate" binding:"required"`
	Procedure           string                  `json:"procedure" binding:"required"`
	MaterialsUsed       string                  `json:"materialsUsed"`
	Notes               string                  `json:"notes"`
	Status              models.TreatmentStatus  `json:"status" binding:"omitempty,oneof=ongoing completed paused"`
	NextAppointmentDate string                  `json:"nextAppointmentDate"`
	NextAppointmentTime string                  `json:"nextAppointmentTime"`
	Cost                *float64                `json:"cost"`
	ToothSelections     []ToothSelectionRequest `json:"toothSelections"`
}

// CreateTreatment handles recording a treatment session. When a next
// appointment date is supplied a follow-up appointment is created as a
// second independent insert; if that insert fails the treatment stays
// committed and the response carries a warning.
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var req CreateTreatmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.TreatmentDate) {
		utils.BadRequest(c, "Invalid treatment date. Please use YYYY-MM-DD format")
		return
	}
	if req.NextAppointmentDate != "" && !utils.ValidDateString(req.NextAppointmentDate) {
		utils.BadRequest(c, "Invalid next appointment date. Please use YYYY-MM-DD format")
		return
	}
	if req.NextAppointmentTime != "" && !utils.ValidClockString(req.NextAppointmentTime) {
		utils.BadRequest(c, "Invalid next appointment time. Please use HH:MM format")
		return
	}

	for _, sel := range req.ToothSelections {
		for _, s := range sel.Surfaces {
			if !models.ValidSurface(models.ToothSurface(s)) {
				utils.BadRequest(c, fmt.Sprintf("Invalid tooth surface %q", s))
				return
			}
		}
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

	status := req.Status
	if status == "" {
		status = models.TreatmentOngoing
	}

	treatment := models.Treatment{
		PatientID:           req.PatientID,
		AppointmentID:       req.AppointmentID,
		TreatmentDate:       req.TreatmentDate,
		Procedure:           req.Procedure,
		MaterialsUsed:       req.MaterialsUsed,
		Notes:               req.Notes,
		Status:              status,
		NextAppointmentDate: req.NextAppointmentDate,
		Cost:                req.Cost,
	}
	for _, sel := range req.ToothSelections {
		treatment.ToothSelections = append(treatment.ToothSelections, models.ToothSelection{
			ToothNumber: sel.ToothNumber,
			Surfaces:    strings.Join(sel.Surfaces, ","),
		})
	}

	if err := h.DB.Create(&treatment).Error; err != nil {
		utils.InternalServerError(c, "Failed to record treatment: "+err.Error())
		return
	}

	// Spawn the follow-up appointment as its own call. There is no
	// transaction spanning the two inserts.
	if req.NextAppointmentDate != "" {
		followUpTime := req.NextAppointmentTime
		if followUpTime == "" {
			followUpTime = "09:00"
		}
		followUp := models.Appointment{
			PatientID: req.PatientID,
			Date:      req.NextAppointmentDate,
			Time:      followUpTime,
			Type:      models.TypeFollowUp,
			Status:    models.StatusScheduled,
			Notes:     "Follow-up for: " + req.Procedure,
		}
		if err := h.DB.Create(&followUp).Error; err != nil {
			utils.CreatedWithWarning(c, "Treatment recorded successfully",
				"Failed to create follow-up appointment: "+err.Error(), treatment)
			return
		}
	}

	utils.Created(c, "Treatment recorded successfully", treatment)
}

// GetTreatments handles fetching treatments, optionally for one patient,
// ordered by treatment date descending.
func (h *TreatmentHandler) GetTreatments(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("ToothSelections").Order("treatment_date desc")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var treatments []models.Treatment
	if err := query.Find(&treatments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch treatments: "+err.Error())
		return
	}

	utils.Success(c, "Treatments fetched successfully", treatments)
}

// GetTreatmentByID handles fetching a single treatment with its tooth
// selections.
func (h *TreatmentHandler) GetTreatmentByID(c *gin.Context) {
	var treatment models.Treatment
	if err := h.DB.Preload("Patient").Preload("ToothSelections").
		First(&treatment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Treatment fetched successfully", treatment)
}

// UpdateTreatmentStatusRequest represents the request body for updating a
// treatment's status.
type UpdateTreatmentStatusRequest struct {
	Status models.TreatmentStatus `json:"status" binding:"required,oneof=ongoing completed paused"`
	Notes  string                 `json:"notes"`
}

// UpdateTreatmentStatus handles moving a treatment between ongoing,
// completed and paused.
func (h *TreatmentHandler) UpdateTreatmentStatus(c *gin.Context) {
	var req UpdateTreatmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var treatment models.Treatment
	if err := h.DB.First(&treatment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	treatment.Status = req.Status
	if req.Notes != "" {
		treatment.Notes = req.Notes
	}

	if err := h.DB.Save(&treatment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update treatment status: "+err.Error())
		return
	}

	utils.Success(c, "Treatment status updated successfully", treatment)
}
