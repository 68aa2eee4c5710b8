// Package bill contains bill-related use cases.
package bill

import (
	"time"

	"github.com/billwise/backend/internal/domain/entity"
)

// NextOccurrence advances a due date by one repeat cycle. Month and year
// advances clamp the day-of-month to the target month's length, so a bill
// due Jan 31 lands on Feb 28 (or Feb 29 in leap years) instead of spilling
// into March. A custom cycle without a positive interval is an identity.
func NextOccurrence(current time.Time, cycle entity.RepeatCycle, customIntervalDays int) time.Time {
	switch cycle {
	case entity.RepeatCycleDaily:
		return current.AddDate(0, 0, 1)
	case entity.RepeatCycleWeekly:
		return current.AddDate(0, 0, 7)
	case entity.RepeatCycleMonthly:
		return addMonthsClamped(current, 1)
	case entity.RepeatCycleYearly:
		return addYearsClamped(current, 1)
	case entity.RepeatCycleCustom:
		if customIntervalDays > 0 {
			return current.AddDate(0, 0, customIntervalDays)
		}
		return current
	default:
		return current
	}
}

// PreviousOccurrence retreats a due date by one repeat cycle. It is the
// inverse of NextOccurrence and marks the start of the current cycle
// window used by the status classifier.
func PreviousOccurrence(current time.Time, cycle entity.RepeatCycle, customIntervalDays int) time.Time {
	switch cycle {
	case entity.RepeatCycleDaily:
		return current.AddDate(0, 0, -1)
	case entity.RepeatCycleWeekly:
		return current.AddDate(0, 0, -7)
	case entity.RepeatCycleMonthly:
		return addMonthsClamped(current, -1)
	case entity.RepeatCycleYearly:
		return addYearsClamped(current, -1)
	case entity.RepeatCycleCustom:
		if customIntervalDays > 0 {
			return current.AddDate(0, 0, -customIntervalDays)
		}
		return current
	default:
		return current
	}
}

// NextOccurrenceAfter repeatedly advances a due date until it lands strictly
// after the reference date. Catches up bills that were left unpaid across
// several cycles. A cycle that cannot advance returns the date unchanged.
func NextOccurrenceAfter(current time.Time, cycle entity.RepeatCycle, customIntervalDays int, after time.Time) time.Time {
	next := current
	for !next.After(after) {
		advanced := NextOccurrence(next, cycle, customIntervalDays)
		if !advanced.After(next) {
			return next
		}
		next = advanced
	}
	return next
}

// addMonthsClamped adds calendar months, clamping the day-of-month to the
// target month's length. time.AddDate normalizes overflow (Jan 31 + 1 month
// becomes Mar 2/3), which is not what bill due dates need.
func addMonthsClamped(date time.Time, months int) time.Time {
	firstOfTarget := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, months, 0)

	day := date.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	h, m, s := date.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, h, m, s, date.Nanosecond(), date.Location())
}

// addYearsClamped adds calendar years with the same day clamping,
// covering Feb 29 on non-leap targets.
func addYearsClamped(date time.Time, years int) time.Time {
	targetYear := date.Year() + years

	day := date.Day()
	if last := daysInMonth(targetYear, date.Month()); day > last {
		day = last
	}

	h, m, s := date.Clock()
	return time.Date(targetYear, date.Month(), day, h, m, s, date.Nanosecond(), date.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
