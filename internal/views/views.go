// Package views holds the read-only projections computed over
// already-fetched collections: daily and weekly appointment filters,
// overdue lab work, visit statistics, patient age and ledger balance.
// Everything here is a pure function of its inputs.
package views

import (
	"sort"
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
)

// OnDate returns the appointments whose calendar date equals date
// (YYYY-MM-DD). Input ordering is preserved, so applying the filter twice
// yields the identical set.
func OnDate(appointments []models.Appointment, date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// Today returns the appointments scheduled for now's calendar date.
func Today(appointments []models.Appointment, now time.Time) []models.Appointment {
	return OnDate(appointments, now.Format(utils.DateLayout))
}

// StartOfWeek truncates t to midnight of its week's Sunday.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// InWeekOf returns the appointments falling between the Sunday of now's
// week and six days later, inclusive.
func InWeekOf(appointments []models.Appointment, now time.Time) []models.Appointment {
	start := StartOfWeek(now).Format(utils.DateLayout)
	end := StartOfWeek(now).AddDate(0, 0, 6).Format(utils.DateLayout)
	var out []models.Appointment
	for _, a := range appointments {
		if a.Date >= start && a.Date <= end {
			out = append(out, a)
		}
	}
	return out
}

// IsOverdue reports whether a lab work order's expected date has passed
// while the order is neither completed nor delivered. Orders without an
// expected date are never overdue.
func IsOverdue(order models.LabWorkOrder, now time.Time) bool {
	if order.ExpectedDate == "" {
		return false
	}
	if order.Status == models.LabWorkCompleted || order.Status == models.LabWorkDelivered {
		return false
	}
	return order.ExpectedDate < now.Format(utils.DateLayout)
}

// OverdueOrders filters the lab work orders that are overdue as of now.
func OverdueOrders(orders []models.LabWorkOrder, now time.Time) []models.LabWorkOrder {
	var out []models.LabWorkOrder
	for _, o := range orders {
		if IsOverdue(o, now) {
			out = append(out, o)
		}
	}
	return out
}

// CompletedVisitCount counts the patient's completed appointments.
func CompletedVisitCount(appointments []models.Appointment) int {
	count := 0
	for _, a := range appointments {
		if a.Status == models.StatusCompleted {
			count++
		}
	}
	return count
}

// LastVisit returns the most recent completed appointment, or false when
// the patient has none. When two visits share a date the fetched order is
// kept, so the earlier element wins the tie.
func LastVisit(appointments []models.Appointment) (models.Appointment, bool) {
	completed := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == models.StatusCompleted {
			completed = append(completed, a)
		}
	}
	if len(completed) == 0 {
		return models.Appointment{}, false
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date > completed[j].Date
	})
	return completed[0], true
}

// Age computes full years between a YYYY-MM-DD birth date and now,
// decremented by one when now's month/day precedes the birth month/day.
func Age(dateOfBirth string, now time.Time) (int, error) {
	dob, err := utils.ParseDate(dateOfBirth)
	if err != nil {
		return 0, err
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years, nil
}

// Balance derives a patient's outstanding balance from the ledger:
// sum of charges minus sum of payments.
func Balance(entries []models.PaymentEntry) float64 {
	var charges, payments float64
	for _, e := range entries {
		switch e.EntryType {
		case models.LedgerCharge:
			charges += e.Amount
		case models.LedgerPayment:
			payments += e.Amount
		}
	}
	return charges - payments
}
