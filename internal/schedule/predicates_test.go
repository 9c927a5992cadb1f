package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dental-clinic-server/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(day(2024, time.June, 15)))  // Saturday
	assert.True(t, IsWeekend(day(2024, time.June, 16)))  // Sunday
	assert.False(t, IsWeekend(day(2024, time.June, 17))) // Monday
	assert.False(t, IsWeekend(day(2024, time.June, 14))) // Friday
}

func TestIsPastDate(t *testing.T) {
	now := day(2024, time.June, 15)

	assert.True(t, IsPastDate(day(2024, time.June, 14), now))
	assert.False(t, IsPastDate(day(2024, time.June, 16), now))
	// Same calendar date is not past, regardless of clock time.
	assert.False(t, IsPastDate(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDate(time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC), now))
}

func TestHolidayCalendar(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.ClinicHoliday{Date: "2024-12-25", Name: "Christmas"}).Error)

	cal, err := NewHolidayCalendar(db)
	require.NoError(t, err)

	assert.True(t, cal.IsHoliday(day(2024, time.December, 25)))
	assert.False(t, cal.IsHoliday(day(2024, time.December, 26)))
}

func TestHolidayCalendar_RefreshPicksUpTableChanges(t *testing.T) {
	db := setupTestDB(t)
	cal, err := NewHolidayCalendar(db)
	require.NoError(t, err)

	newYear := day(2025, time.January, 1)
	assert.False(t, cal.IsHoliday(newYear))

	// The table changes; the cache only sees it after a refresh.
	require.NoError(t, db.Create(&models.ClinicHoliday{Date: "2025-01-01", Name: "New Year"}).Error)
	assert.False(t, cal.IsHoliday(newYear))

	require.NoError(t, cal.Refresh())
	assert.True(t, cal.IsHoliday(newYear))
}
