package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"
)

// HolidayHandler handles clinic holiday requests. Every mutation refreshes
// the in-memory calendar so the persisted table stays the source of truth.
type HolidayHandler struct {
	DB       *gorm.DB
	Calendar *schedule.HolidayCalendar
}

// NewHolidayHandler creates a new HolidayHandler.
func NewHolidayHandler(db *gorm.DB, calendar *schedule.HolidayCalendar) *HolidayHandler {
	return &HolidayHandler{DB: db, Calendar: calendar}
}

// CreateHolidayRequest represents the request body for declaring a holiday.
type CreateHolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name"`
}

// CreateHoliday handles declaring a clinic holiday.
func (h *HolidayHandler) CreateHoliday(c *gin.Context) {
	var req CreateHolidayRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.Date) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
		return
	}

	holiday := models.ClinicHoliday{
		Date: req.Date,
		Name: req.Name,
	}

	if err := h.DB.Create(&holiday).Error; err != nil {
		utils.InternalServerError(c, "Failed to create holiday: "+err.Error())
		return
	}

	if err := h.Calendar.Refresh(); err != nil {
		utils.InternalServerError(c, "Holiday saved but calendar refresh failed: "+err.Error())
		return
	}

	utils.Created(c, "Holiday created successfully", holiday)
}

// GetHolidays handles fetching all clinic holidays in date order.
func (h *HolidayHandler) GetHolidays(c *gin.Context) {
	var holidays []models.ClinicHoliday
	if err := h.DB.Order("date asc").Find(&holidays).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch holidays: "+err.Error())
		return
	}

	utils.Success(c, "Holidays fetched successfully", holidays)
}

// DeleteHoliday handles removing a clinic holiday.
func (h *HolidayHandler) DeleteHoliday(c *gin.Context) {
	var holiday models.ClinicHoliday
	if err := h.DB.First(&holiday, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Holiday not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&holiday).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete holiday: "+err.Error())
		return
	}

	if err := h.Calendar.Refresh(); err != nil {
		utils.InternalServerError(c, "Holiday deleted but calendar refresh failed: "+err.Error())
		return
	}

	utils.Success(c, "Holiday deleted successfully", nil)
}
