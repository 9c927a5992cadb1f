package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-clinic-server/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		now  time.Time
		want int
	}{
		{"birthday not yet reached this year", "2000-06-15", date(2024, time.June, 10), 23},
		{"birthday today", "2000-06-15", date(2024, time.June, 15), 24},
		{"birthday already passed", "2000-06-15", date(2024, time.December, 1), 24},
		{"day before birthday", "1990-01-01", date(2024, time.December, 31), 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Age(tt.dob, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAge_InvalidDate(t *testing.T) {
	_, err := Age("15/06/2000", date(2024, time.June, 10))
	assert.Error(t, err)
}

func TestOnDate_IdempotentReFiltering(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2024-06-15", Time: "09:00"},
		{Date: "2024-06-16", Time: "10:00"},
		{Date: "2024-06-15", Time: "11:00"},
	}

	once := OnDate(appointments, "2024-06-15")
	twice := OnDate(once, "2024-06-15")
	assert.Equal(t, once, twice)
	require.Len(t, once, 2)
	// Fetch ordering is preserved as-is.
	assert.Equal(t, "09:00", once[0].Time)
	assert.Equal(t, "11:00", once[1].Time)
}

func TestInWeekOf(t *testing.T) {
	// 2024-06-12 is a Wednesday; its week runs Sunday 2024-06-09 through
	// Saturday 2024-06-15 inclusive.
	now := date(2024, time.June, 12)
	appointments := []models.Appointment{
		{Date: "2024-06-08"}, // Saturday before
		{Date: "2024-06-09"}, // Sunday, start of week
		{Date: "2024-06-12"},
		{Date: "2024-06-15"}, // Saturday, end of week
		{Date: "2024-06-16"}, // next Sunday
	}

	week := InWeekOf(appointments, now)
	require.Len(t, week, 3)
	assert.Equal(t, "2024-06-09", week[0].Date)
	assert.Equal(t, "2024-06-15", week[2].Date)
}

func TestStartOfWeek(t *testing.T) {
	// A Sunday is its own week start.
	sunday := date(2024, time.June, 9)
	assert.Equal(t, 9, StartOfWeek(sunday).Day())
	// A Saturday maps back to the preceding Sunday.
	saturday := date(2024, time.June, 15)
	assert.Equal(t, 9, StartOfWeek(saturday).Day())
}

func TestIsOverdue(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name     string
		expected string
		status   models.LabWorkStatus
		want     bool
	}{
		{"past date, pending", "2024-06-01", models.LabWorkPending, true},
		{"past date, in progress", "2024-06-01", models.LabWorkInProgress, true},
		{"past date, completed", "2020-01-01", models.LabWorkCompleted, false},
		{"past date, delivered", "2020-01-01", models.LabWorkDelivered, false},
		{"future date, pending", "2024-07-01", models.LabWorkPending, false},
		{"same day, pending", "2024-06-15", models.LabWorkPending, false},
		{"no expected date", "", models.LabWorkPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := models.LabWorkOrder{ExpectedDate: tt.expected, Status: tt.status}
			assert.Equal(t, tt.want, IsOverdue(order, now))
		})
	}
}

func TestOverdueOrders_CountTransitions(t *testing.T) {
	now := date(2024, time.June, 15)
	tomorrow := "2024-06-16"
	yesterday := "2024-06-14"

	order := models.LabWorkOrder{ExpectedDate: tomorrow, Status: models.LabWorkPending}
	others := []models.LabWorkOrder{
		{ExpectedDate: yesterday, Status: models.LabWorkPending},
	}

	baseline := len(OverdueOrders(append(others, order), now))

	// Moving the expected date from tomorrow to yesterday adds exactly one.
	order.ExpectedDate = yesterday
	assert.Equal(t, baseline+1, len(OverdueOrders(append(others, order), now)))

	// Completing it with the expected date unchanged removes exactly one.
	order.Status = models.LabWorkCompleted
	assert.Equal(t, baseline, len(OverdueOrders(append(others, order), now)))
}

func TestCompletedVisitCountAndLastVisit(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2024-01-10", Status: models.StatusCompleted},
		{Date: "2024-03-05", Status: models.StatusCompleted},
		{Date: "2024-02-01", Status: models.StatusCancelled},
		{Date: "2030-01-01", Status: models.StatusScheduled},
	}

	assert.Equal(t, 2, CompletedVisitCount(appointments))

	last, ok := LastVisit(appointments)
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", last.Date)
}

func TestLastVisit_NoneCompleted(t *testing.T) {
	_, ok := LastVisit([]models.Appointment{{Date: "2030-01-01", Status: models.StatusScheduled}})
	assert.False(t, ok)
}

func TestBalance(t *testing.T) {
	entries := []models.PaymentEntry{
		{EntryType: models.LedgerCharge, Amount: 300},
		{EntryType: models.LedgerCharge, Amount: 120.50},
		{EntryType: models.LedgerPayment, Amount: 200},
	}
	assert.InDelta(t, 220.50, Balance(entries), 0.001)
	assert.Zero(t, Balance(nil))
}
