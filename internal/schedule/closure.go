package schedule

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// ClosureAction is the operator's choice for dispositioning the
// appointments of a closed day.
type ClosureAction string

const (
	ActionRescheduleAll        ClosureAction = "reschedule_all"
	ActionCancelAll            ClosureAction = "cancel_all"
	ActionRescheduleIndividual ClosureAction = "reschedule_individual"
)

// ClosureManager coordinates bulk handling of a clinic-wide closure.
// There is no batched backend operation: every affected appointment is
// updated with its own call, and partial failure is reported per record.
type ClosureManager struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

// NewClosureManager creates a new ClosureManager.
func NewClosureManager(db *gorm.DB, log *logrus.Logger) *ClosureManager {
	return &ClosureManager{DB: db, Log: log}
}

// Affected returns the appointments scheduled on the closure date,
// ordered by time of day.
func (m *ClosureManager) Affected(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := m.DB.Preload("Patient").
		Where("date = ?", date).
		Order("time asc").
		Find(&appointments).Error
	return appointments, err
}

// RescheduleAll moves every appointment on the closure date to the new
// date and time, one update per record. Each update sets date, time,
// status and notes in a single call so the record never holds a mixed
// state.
func (m *ClosureManager) RescheduleAll(date, newDate, newTime string) (utils.BulkResult, error) {
	affected, err := m.Affected(date)
	if err != nil {
		return utils.BulkResult{}, err
	}

	result := utils.BulkResult{}
	for _, appt := range affected {
		note := appendNote(appt.Notes, fmt.Sprintf("Rescheduled from %s %s due to clinic closure", appt.Date, appt.Time))
		err := m.DB.Model(&models.Appointment{}).
			Where("id = ?", appt.ID).
			Updates(map[string]interface{}{
				"date":   newDate,
				"time":   newTime,
				"status": models.StatusRescheduled,
				"notes":  note,
			}).Error
		if err != nil {
			m.Log.WithError(err).WithField("appointment_id", appt.ID).Error("closure reschedule failed")
			result.Failed++
			result.Failures = append(result.Failures, utils.BulkFailure{ID: appt.ID, Error: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// CancelAll sets every appointment on the closure date to cancelled, one
// update per record.
func (m *ClosureManager) CancelAll(date string) (utils.BulkResult, error) {
	affected, err := m.Affected(date)
	if err != nil {
		return utils.BulkResult{}, err
	}

	result := utils.BulkResult{}
	for _, appt := range affected {
		note := appendNote(appt.Notes, "Cancelled due to clinic closure")
		err := m.DB.Model(&models.Appointment{}).
			Where("id = ?", appt.ID).
			Updates(map[string]interface{}{
				"status": models.StatusCancelled,
				"notes":  note,
			}).Error
		if err != nil {
			m.Log.WithError(err).WithField("appointment_id", appt.ID).Error("closure cancel failed")
			result.Failed++
			result.Failures = append(result.Failures, utils.BulkFailure{ID: appt.ID, Error: err.Error()})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
