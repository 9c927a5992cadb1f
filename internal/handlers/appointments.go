package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
	"dental-clinic-server/internal/views"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for booking an
// appointment.
type CreateAppointmentRequest struct {
	PatientID string                 `json:"patientId" binding:"required,uuid"`
	Date      string                 `json:"date" binding:"required"`
	Time      string                 `json:"time" binding:"required"`
	Type      models.AppointmentType `json:"type" binding:"omitempty,oneof=regular emergency walk_in follow_up"`
	Notes     string                 `json:"notes"`
}

// CreateAppointment handles booking a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.Date) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
		return
	}
	if !utils.ValidClockString(req.Time) {
		utils.BadRequest(c, "Invalid time. Please use HH:MM format")
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

	apptType := req.Type
	if apptType == "" {
		apptType = models.TypeRegular
	}

	appointment := models.Appointment{
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      apptType,
		Notes:     req.Notes,
		Status:    models.StatusScheduled,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching the appointment list, optionally
// filtered by date or patient, ordered by date then time ascending. Each
// row carries the shallow patient join.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	query := h.DB.Preload("Patient").Order("date asc, time asc")

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", withPatients(appointments))
}

// GetTodaysAppointments handles fetching the appointments scheduled for
// the current date.
func (h *AppointmentHandler) GetTodaysAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Preload("Patient").Order("date asc, time asc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	today := views.Today(appointments, time.Now())
	utils.Success(c, "Today's appointments fetched successfully", withPatients(today))
}

// GetWeekAppointments handles fetching the appointments falling in the
// current week (Sunday through Saturday, inclusive).
func (h *AppointmentHandler) GetWeekAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Preload("Patient").Order("date asc, time asc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	week := views.InWeekOf(appointments, time.Now())
	utils.Success(c, "This week's appointments fetched successfully", withPatients(week))
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.Preload("Patient").First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment.WithPatient())
}

// UpdateAppointmentStatusRequest represents the request body for updating
// an appointment's status.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled rescheduled"`
	Notes  string                   `json:"notes"` // Optional notes for status change (e.g., cancellation reason)
}

// UpdateAppointmentStatus handles marking an appointment completed,
// cancelled or back to scheduled.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointment.Status = req.Status
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment status: "+err.Error())
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// RescheduleAppointmentRequest represents the request body for
// rescheduling an appointment.
type RescheduleAppointmentRequest struct {
	NewDate string `json:"newDate" binding:"required"`
	NewTime string `json:"newTime" binding:"required"`
	Notes   string `json:"notes"` // Optional notes for rescheduling
}

// RescheduleAppointment moves an appointment to a new date and time. The
// date, time, status and notes change together in one update call so the
// record never holds a mixed state.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.NewDate) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
		return
	}
	if !utils.ValidClockString(req.NewTime) {
		utils.BadRequest(c, "Invalid time. Please use HH:MM format")
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointment.Date = req.NewDate
	appointment.Time = req.NewTime
	appointment.Status = models.StatusRescheduled
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to reschedule appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment rescheduled successfully", appointment)
}

func withPatients(appointments []models.Appointment) []models.AppointmentView {
	out := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.WithPatient())
	}
	return out
}
