// Package bill contains bill-related use cases.
package bill

import (
	"time"

	"github.com/billwise/backend/internal/domain/entity"
)

// Classify derives the status of a bill's current occurrence as of the given
// date, plus the signed day distance to the due date (negative = days late).
//
// A bill is paid for the current occurrence when its last payment date falls
// inside the current cycle window, i.e. on or after the previous occurrence
// of the due date. Payment amounts are not reconciled against the estimated
// amount; recording any payment marks the occurrence paid.
func Classify(b *entity.Bill, asOf time.Time) (entity.BillStatus, int) {
	daysToDue := DaysUntil(b.DueDate, asOf)

	if paidForCurrentCycle(b, asOf) {
		return entity.BillStatusPaid, daysToDue
	}

	switch {
	case daysToDue < 0:
		return entity.BillStatusOverdue, daysToDue
	case daysToDue <= entity.DueSoonWindowDays:
		// Boundary day is inclusive: exactly 3 days out is still due soon.
		return entity.BillStatusDueSoon, daysToDue
	default:
		return entity.BillStatusUpcoming, daysToDue
	}
}

// Project builds the full status projection for a bill: status, day distance
// and the occurrence that follows the current due date.
func Project(b *entity.Bill, asOf time.Time) *entity.BillWithStatus {
	status, daysToDue := Classify(b, asOf)
	return &entity.BillWithStatus{
		Bill:      b,
		Status:    status,
		DaysToDue: daysToDue,
		NextDue:   NextOccurrence(b.DueDate, b.RepeatCycle, b.CustomIntervalDays),
	}
}

// DaysUntil returns the calendar-day difference between the due date and the
// reference date. Both are truncated to their own calendar dates first, so
// time-of-day and zone offsets never shift the count.
func DaysUntil(due, asOf time.Time) int {
	d := truncateToDate(due)
	a := truncateToDate(asOf)
	return int(d.Sub(a).Hours() / 24)
}

// paidForCurrentCycle reports whether the occurrence preceding the stored due
// date was already paid. Recording a payment advances the due date to the next
// unpaid occurrence, so the check looks one cycle back: a payment dated on or
// after the previous occurrence covers the cycle the user is currently in.
// Once the stored due date itself arrives, the new occurrence is unpaid and
// the bill classifies by day distance again.
func paidForCurrentCycle(b *entity.Bill, asOf time.Time) bool {
	if b.LastPaymentDate == nil {
		return false
	}
	if !truncateToDate(asOf).Before(truncateToDate(b.DueDate)) {
		return false
	}

	cycleStart := PreviousOccurrence(b.DueDate, b.RepeatCycle, b.CustomIntervalDays)
	if !cycleStart.Before(b.DueDate) {
		// Cycle cannot retreat (custom with no interval); no window to check.
		return false
	}

	last := truncateToDate(*b.LastPaymentDate)
	return !last.Before(truncateToDate(cycleStart)) && !last.After(truncateToDate(asOf))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
