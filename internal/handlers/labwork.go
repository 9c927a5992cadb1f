package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
	"dental-clinic-server/internal/views"
)

// LabWorkHandler handles lab work order requests.
type LabWorkHandler struct {
	DB              *gorm.DB
	MaxUploadSizeMB int64
}

// NewLabWorkHandler creates a new LabWorkHandler.
func NewLabWorkHandler(db *gorm.DB, maxUploadSizeMB int64) *LabWorkHandler {
	return &LabWorkHandler{DB: db, MaxUploadSizeMB: maxUploadSizeMB}
}

// CreateLabWorkRequest represents the request body for sending work to a lab.
type CreateLabWorkRequest struct {
	PatientID       string             `json:"patientId" binding:"required,uuid"`
	TreatmentID     string             `json:"treatmentId" binding:"omitempty,uuid"`
	LabType         models.LabWorkType `json:"labType" binding:"required,oneof=crown bridge denture implant orthodontic_appliance veneer inlay_onlay night_guard other"`
	LabName         string             `json:"labName" binding:"required"`
	WorkDescription string             `json:"workDescription" binding:"required"`
	Instructions    string             `json:"instructions"`
	DateSent        string             `json:"dateSent" binding:"required"`
	ExpectedDate    string             `json:"expectedDate"`
	Cost            *float64           `json:"cost"`
	Notes           string             `json:"notes"`
}

// CreateLabWork handles recording a new outsourced lab order.
func (h *LabWorkHandler) CreateLabWork(c *gin.Context) {
	var req CreateLabWorkRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.DateSent) {
		utils.BadRequest(c, "Invalid date sent. Please use YYYY-MM-DD format")
		return
	}
	if req.ExpectedDate != "" && !utils.ValidDateString(req.ExpectedDate) {
		utils.BadRequest(c, "Invalid expected date. Please use YYYY-MM-DD format")
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

	order := models.LabWorkOrder{
		PatientID:       req.PatientID,
		TreatmentID:     req.TreatmentID,
		LabType:         req.LabType,
		LabName:         req.LabName,
		WorkDescription: req.WorkDescription,
		Instructions:    req.Instructions,
		DateSent:        req.DateSent,
		ExpectedDate:    req.ExpectedDate,
		Status:          models.LabWorkPending,
		Cost:            req.Cost,
		Notes:           req.Notes,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		utils.InternalServerError(c, "Failed to create lab work order: "+err.Error())
		return
	}

	utils.Created(c, "Lab work order created successfully", order)
}

// GetLabWork handles fetching lab work orders, ordered by date sent
// descending. Supports ?patient_id= and ?overdue=true filters.
func (h *LabWorkHandler) GetLabWork(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("Attachments").Order("date_sent desc")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var orders []models.LabWorkOrder
	if err := query.Find(&orders).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch lab work orders: "+err.Error())
		return
	}

	if c.Query("overdue") == "true" {
		orders = views.OverdueOrders(orders, time.Now())
	}

	utils.Success(c, "Lab work orders fetched successfully", orders)
}

// GetLabWorkByID handles fetching a single lab work order with its
// attachments.
func (h *LabWorkHandler) GetLabWorkByID(c *gin.Context) {
	var order models.LabWorkOrder
	if err := h.DB.Preload("Patient").Preload("Attachments").
		First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Lab work order not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Lab work order fetched successfully", order)
}

// UpdateLabWorkRequest represents the request body for updating a lab work
// order. Empty fields are left unchanged.
type UpdateLabWorkRequest struct {
	LabType         models.LabWorkType   `json:"labType" binding:"omitempty,oneof=crown bridge denture implant orthodontic_appliance veneer inlay_onlay night_guard other"`
	LabName         string               `json:"labName"`
	WorkDescription string               `json:"workDescription"`
	Instructions    string               `json:"instructions"`
	ExpectedDate    string               `json:"expectedDate"`
	CompletedDate   string               `json:"completedDate"`
	Status          models.LabWorkStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed delivered"`
	Cost            *float64             `json:"cost"`
	Notes           string               `json:"notes"`
}

// UpdateLabWork handles updating an existing lab work order.
func (h *LabWorkHandler) UpdateLabWork(c *gin.Context) {
	var req UpdateLabWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.ExpectedDate != "" && !utils.ValidDateString(req.ExpectedDate) {
		utils.BadRequest(c, "Invalid expected date. Please use YYYY-MM-DD format")
		return
	}
	if req.CompletedDate != "" && !utils.ValidDateString(req.CompletedDate) {
		utils.BadRequest(c, "Invalid completed date. Please use YYYY-MM-DD format")
		return
	}

	var order models.LabWorkOrder
	if err := h.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Lab work order not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	// Apply updates
	if req.LabType != "" {
		order.LabType = req.LabType
	}
	if req.LabName != "" {
		order.LabName = req.LabName
	}
	if req.WorkDescription != "" {
		order.WorkDescription = req.WorkDescription
	}
	if req.Instructions != "" {
		order.Instructions = req.Instructions
	}
	if req.ExpectedDate != "" {
		order.ExpectedDate = req.ExpectedDate
	}
	if req.CompletedDate != "" {
		order.CompletedDate = req.CompletedDate
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.Cost != nil {
		order.Cost = req.Cost
	}
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	if err := h.DB.Save(&order).Error; err != nil {
		utils.InternalServerError(c, "Failed to update lab work order: "+err.Error())
		return
	}

	utils.Success(c, "Lab work order updated successfully", order)
}

// DeleteLabWork handles deleting a lab work order. Attachments are removed
// with the order so no orphaned file rows are left behind.
func (h *LabWorkHandler) DeleteLabWork(c *gin.Context) {
	var order models.LabWorkOrder
	if err := h.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Lab work order not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Where("lab_work_order_id = ?", order.ID).
		Delete(&models.LabWorkAttachment{}).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete lab work attachments: "+err.Error())
		return
	}

	if err := h.DB.Delete(&order).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete lab work order: "+err.Error())
		return
	}

	utils.Success(c, "Lab work order deleted successfully", nil)
}

// UploadLabWorkAttachment handles uploading a file for a lab work order.
// The file content is stored in the database alongside its metadata.
func (h *LabWorkHandler) UploadLabWorkAttachment(c *gin.Context) {
	orderID := c.Param("id")

	// Verify the lab work order exists
	var order models.LabWorkOrder
	if err := h.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Lab work order not found")
		} else {
			utils.InternalServerError(c, "Database error verifying lab work order: "+err.Error())
		}
		return
	}

	file, header, err := c.Request.FormFile("file") // "file" is the name of the form field
	if err != nil {
		utils.BadRequest(c, "Error retrieving file from form: "+err.Error())
		return
	}
	defer file.Close()

	maxBytes := h.MaxUploadSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		utils.BadRequest(c, fmt.Sprintf("File exceeds the maximum allowed size of %dMB", h.MaxUploadSizeMB))
		return
	}

	fileData, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Error reading file content: "+err.Error())
		return
	}

	attachment := models.LabWorkAttachment{
		LabWorkOrderID: order.ID,
		FileName:       header.Filename,
		FilePath:       fmt.Sprintf("%s/%d_%s", order.ID, time.Now().Unix(), header.Filename),
		FileType:       header.Header.Get("Content-Type"),
		FileSize:       int64(len(fileData)),
		FileData:       fileData,
	}

	if err := h.DB.Create(&attachment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create lab work attachment entry: "+err.Error())
		return
	}

	// Return the attachment metadata without the file content
	responseAttachment := struct {
		ID             string    `json:"id"`
		LabWorkOrderID string    `json:"labWorkOrderId"`
		FileName       string    `json:"fileName"`
		FilePath       string    `json:"filePath"`
		FileType       string    `json:"fileType"`
		FileSize       int64     `json:"fileSize"`
		CreatedAt      time.Time `json:"createdAt"`
	}{
		ID:             attachment.ID,
		LabWorkOrderID: attachment.LabWorkOrderID,
		FileName:       attachment.FileName,
		FilePath:       attachment.FilePath,
		FileType:       attachment.FileType,
		FileSize:       attachment.FileSize,
		CreatedAt:      attachment.CreatedAt,
	}

	utils.Created(c, "File uploaded and linked to lab work order successfully", responseAttachment)
}

// GetLabWorkAttachment handles serving a stored attachment's file data.
func (h *LabWorkHandler) GetLabWorkAttachment(c *gin.Context) {
	var attachment models.LabWorkAttachment
	if err := h.DB.First(&attachment, "id = ?", c.Param("attachmentId")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Attachment not found")
		} else {
			utils.InternalServerError(c, "Database error fetching attachment: "+err.Error())
		}
		return
	}

	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	c.Data(http.StatusOK, attachment.FileType, attachment.FileData)
}
