// Package calendar contains calendar view use cases.
package calendar

import (
	"time"

	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

// GridSize is the fixed number of cells in a month view: 6 full weeks of 7
// days, regardless of month length or starting weekday.
const GridSize = 42

// BuildMonth lays out the 42-cell grid for a month. Leading cells come from
// the previous month so the grid opens on the given week-start day, trailing
// cells from the next month fill the remaining slots. Exactly one cell is
// flagged as today, and only when the reference date falls inside the
// displayed month.
func BuildMonth(month valueobject.Month, today time.Time, weekStart time.Weekday) []entity.CalendarDay {
	first := month.FirstDay()
	leading := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDate(0, 0, -leading)

	todayYear, todayMonth, todayDay := today.Date()

	days := make([]entity.CalendarDay, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		inMonth := month.Contains(d)
		days = append(days, entity.CalendarDay{
			Day:            d.Day(),
			Month:          d.Month(),
			Year:           d.Year(),
			IsCurrentMonth: inMonth,
			IsToday:        inMonth && d.Year() == todayYear && d.Month() == todayMonth && d.Day() == todayDay,
		})
	}
	return days
}
