package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"
)

// ClosureHandler handles clinic-closure requests and the calendar
// availability lookups used to disable booking cells.
type ClosureHandler struct {
	Manager  *schedule.ClosureManager
	Calendar *schedule.HolidayCalendar
}

// NewClosureHandler creates a new ClosureHandler.
func NewClosureHandler(manager *schedule.ClosureManager, calendar *schedule.HolidayCalendar) *ClosureHandler {
	return &ClosureHandler{Manager: manager, Calendar: calendar}
}

// ClosurePreviewRequest represents the request body for previewing a
// closure.
type ClosurePreviewRequest struct {
	Date string `json:"date" binding:"required"`
}

// PreviewClosure handles computing the set of appointments affected by a
// closure on the given date.
func (h *ClosureHandler) PreviewClosure(c *gin.Context) {
	var req ClosurePreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.Date) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
		return
	}

	affected, err := h.Manager.Affected(req.Date)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch affected appointments: "+err.Error())
		return
	}

	utils.Success(c, "Affected appointments fetched successfully", gin.H{
		"date":          req.Date,
		"affected":      withPatients(affected),
		"affectedCount": len(affected),
	})
}

// ApplyClosureRequest represents the request body for dispositioning a
// closure.
type ApplyClosureRequest struct {
	Date    string                 `json:"date" binding:"required"`
	Action  schedule.ClosureAction `json:"action" binding:"required,oneof=reschedule_all cancel_all reschedule_individual"`
	NewDate string                 `json:"newDate"`
	NewTime string                 `json:"newTime"`
}

// ApplyClosure handles executing the operator's chosen bulk action. Each
// affected appointment is updated with its own call; the response reports
// how many succeeded and how many failed rather than a single success
// flag.
func (h *ClosureHandler) ApplyClosure(c *gin.Context) {
	var req ApplyClosureRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.Date) {
		utils.BadRequest(c, "Invalid date. Please use YYYY-MM-DD format")
		return
	}

	switch req.Action {
	case schedule.ActionRescheduleAll:
		if !utils.ValidDateString(req.NewDate) {
			utils.BadRequest(c, "Invalid new date. Please use YYYY-MM-DD format")
			return
		}
		if !utils.ValidClockString(req.NewTime) {
			utils.BadRequest(c, "Invalid new time. Please use HH:MM format")
			return
		}
		result, err := h.Manager.RescheduleAll(req.Date, req.NewDate, req.NewTime)
		if err != nil {
			utils.InternalServerError(c, "Failed to reschedule appointments: "+err.Error())
			return
		}
		utils.Success(c, "Closure reschedule completed", result)

	case schedule.ActionCancelAll:
		result, err := h.Manager.CancelAll(req.Date)
		if err != nil {
			utils.InternalServerError(c, "Failed to cancel appointments: "+err.Error())
			return
		}
		utils.Success(c, "Closure cancellation completed", result)

	case schedule.ActionRescheduleIndividual:
		// No bulk change: hand back the affected set for one-at-a-time
		// handling through the single-appointment reschedule endpoint.
		affected, err := h.Manager.Affected(req.Date)
		if err != nil {
			utils.InternalServerError(c, "Failed to fetch affected appointments: "+err.Error())
			return
		}
		utils.Success(c, "Appointments flagged for individual rescheduling", gin.H{
			"affected":      withPatients(affected),
			"affectedCount": len(affected),
		})
	}
}

// DayAvailability reports the predicates a booking calendar uses to
// disable a cell.
type DayAvailability struct {
	Date      string `json:"date"`
	IsWeekend bool   `json:"isWeekend"`
	IsPast    bool   `json:"isPast"`
	IsHoliday bool   `json:"isHoliday"`
	Bookable  bool   `json:"bookable"`
}

// GetDayAvailability handles evaluating the scheduling predicates for one
// calendar date (?date=YYYY-MM-DD).
func (h *ClosureHandler) GetDayAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	day, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	now := time.Now()
	availability := DayAvailability{
		Date:      dateStr,
		IsWeekend: schedule.IsWeekend(day),
		IsPast:    schedule.IsPastDate(day, now),
		IsHoliday: h.Calendar.IsHoliday(day),
	}
	availability.Bookable = !availability.IsWeekend && !availability.IsPast && !availability.IsHoliday

	utils.Success(c, "Day availability evaluated successfully", availability)
}
