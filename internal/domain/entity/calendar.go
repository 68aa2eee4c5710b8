// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// CalendarDay is one cell of the 6x7 month grid. It is a pure value,
// recomputed on every month navigation and never persisted.
type CalendarDay struct {
	Day            int
	Month          time.Month
	Year           int
	IsCurrentMonth bool
	IsToday        bool
}

// Date returns the calendar date of the cell at midnight UTC.
func (d CalendarDay) Date() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
