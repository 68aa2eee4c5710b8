// Package valueobject defines immutable domain value types.
package valueobject

import (
	"fmt"
	"time"
)

// Month identifies a calendar month (year + month), the unit the
// calendar grid and aggregations operate on.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth creates a Month from a year and month.
func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// MonthOf returns the Month containing the given date.
func MonthOf(date time.Time) Month {
	return Month{Year: date.Year(), Month: date.Month()}
}

// ParseMonth parses a "YYYY-MM" string into a Month.
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", value, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the month in "YYYY-MM" format.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month.
func (m Month) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// Days returns the number of days in the month (28-31).
func (m Month) Days() int {
	return m.LastDay().Day()
}

// Next returns the following month.
func (m Month) Next() Month {
	return MonthOf(m.FirstDay().AddDate(0, 1, 0))
}

// Previous returns the preceding month.
func (m Month) Previous() Month {
	return MonthOf(m.FirstDay().AddDate(0, -1, 0))
}

// Contains reports whether the given date falls within the month.
func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}
