// Package schedule contains the calendar predicates used to disable
// invalid appointment slots and the clinic-closure workflow that
// dispositions the appointments of a closed day.
package schedule

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPastDate reports whether the date, truncated to midnight, is strictly
// before now's date.
func IsPastDate(t, now time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// HolidayCalendar answers the holiday predicate from an in-memory set of
// dates cached from the clinic_holidays table. The table is the source of
// truth; every holiday mutation refreshes the cache.
type HolidayCalendar struct {
	db *gorm.DB

	mu    sync.RWMutex
	dates map[string]struct{}
}

// NewHolidayCalendar builds a calendar and loads the current holiday set.
// A load failure leaves the cache empty; the caller decides whether that
// is fatal.
func NewHolidayCalendar(db *gorm.DB) (*HolidayCalendar, error) {
	cal := &HolidayCalendar{db: db, dates: map[string]struct{}{}}
	err := cal.Refresh()
	return cal, err
}

// Refresh reloads the cached date set from the clinic_holidays table.
func (cal *HolidayCalendar) Refresh() error {
	var holidays []models.ClinicHoliday
	if err := cal.db.Find(&holidays).Error; err != nil {
		return err
	}

	dates := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		dates[h.Date] = struct{}{}
	}

	cal.mu.Lock()
	cal.dates = dates
	cal.mu.Unlock()
	return nil
}

// IsHoliday reports whether the date matches a clinic holiday.
func (cal *HolidayCalendar) IsHoliday(t time.Time) bool {
	cal.mu.RLock()
	defer cal.mu.RUnlock()
	_, ok := cal.dates[t.Format(utils.DateLayout)]
	return ok
}
