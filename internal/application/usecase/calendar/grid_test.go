// Package calendar contains calendar view use cases.
package calendar

import (
	"testing"
	"time"

	"github.com/billwise/backend/internal/domain/valueobject"
)

func TestBuildMonth_GridShape(t *testing.T) {
	months := []valueobject.Month{
		valueobject.NewMonth(2024, time.February), // leap February
		valueobject.NewMonth(2025, time.February),
		valueobject.NewMonth(2025, time.June),
		valueobject.NewMonth(2025, time.December),
	}

	for _, m := range months {
		t.Run(m.String(), func(t *testing.T) {
			days := BuildMonth(m, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), time.Sunday)
			if len(days) != GridSize {
				t.Fatalf("grid has %d cells, want %d", len(days), GridSize)
			}

			// Cells are consecutive calendar dates.
			prev := time.Date(days[0].Year, days[0].Month, days[0].Day, 0, 0, 0, 0, time.UTC)
			for i := 1; i < len(days); i++ {
				cur := time.Date(days[i].Year, days[i].Month, days[i].Day, 0, 0, 0, 0, time.UTC)
				if !cur.Equal(prev.AddDate(0, 0, 1)) {
					t.Fatalf("cell %d is %v, want %v", i, cur, prev.AddDate(0, 0, 1))
				}
				prev = cur
			}

			inMonth := 0
			for _, d := range days {
				if d.IsCurrentMonth {
					inMonth++
				}
			}
			if inMonth != m.Days() {
				t.Errorf("%d cells flagged in-month, want %d", inMonth, m.Days())
			}
		})
	}
}

func TestBuildMonth_February2024SundayStart(t *testing.T) {
	// Feb 1 2024 is a Thursday, so a Sunday-start grid opens on Jan 28.
	month := valueobject.NewMonth(2024, time.February)
	days := BuildMonth(month, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC), time.Sunday)

	if days[0].Month != time.January || days[0].Day != 28 {
		t.Errorf("first cell = %v %d, want January 28", days[0].Month, days[0].Day)
	}
	for i := 0; i < 4; i++ {
		if days[i].IsCurrentMonth {
			t.Errorf("leading cell %d flagged as current month", i)
		}
	}
	if !days[4].IsCurrentMonth || days[4].Day != 1 {
		t.Errorf("cell 4 = %v %d (current=%v), want February 1", days[4].Month, days[4].Day, days[4].IsCurrentMonth)
	}

	// 4 leading + 29 February cells, then trailing March fills to 42.
	if last := days[4+29-1]; !last.IsCurrentMonth || last.Day != 29 {
		t.Errorf("cell 32 = %v %d, want February 29", last.Month, last.Day)
	}
	if first := days[4+29]; first.IsCurrentMonth || first.Month != time.March || first.Day != 1 {
		t.Errorf("cell 33 = %v %d, want trailing March 1", first.Month, first.Day)
	}
	if tail := days[GridSize-1]; tail.Month != time.March || tail.Day != 9 {
		t.Errorf("last cell = %v %d, want March 9", tail.Month, tail.Day)
	}
}

func TestBuildMonth_MondayWeekStart(t *testing.T) {
	// Jun 1 2025 is a Sunday; a Monday-start grid needs 6 leading May cells.
	month := valueobject.NewMonth(2025, time.June)
	days := BuildMonth(month, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), time.Monday)

	if days[0].Month != time.May || days[0].Day != 26 {
		t.Errorf("first cell = %v %d, want May 26", days[0].Month, days[0].Day)
	}
	if !days[6].IsCurrentMonth || days[6].Day != 1 {
		t.Errorf("cell 6 = %v %d, want June 1", days[6].Month, days[6].Day)
	}
}

func TestBuildMonth_MonthStartingOnWeekStart(t *testing.T) {
	// Jun 1 2025 is a Sunday, so a Sunday-start grid has no leading cells.
	month := valueobject.NewMonth(2025, time.June)
	days := BuildMonth(month, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), time.Sunday)

	if !days[0].IsCurrentMonth || days[0].Day != 1 {
		t.Errorf("first cell = %v %d (current=%v), want June 1", days[0].Month, days[0].Day, days[0].IsCurrentMonth)
	}
}

func TestBuildMonth_TodayFlag(t *testing.T) {
	month := valueobject.NewMonth(2025, time.June)

	t.Run("today inside displayed month is flagged once", func(t *testing.T) {
		days := BuildMonth(month, time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC), time.Sunday)
		flagged := 0
		for _, d := range days {
			if d.IsToday {
				flagged++
				if d.Day != 10 || d.Month != time.June {
					t.Errorf("flagged cell = %v %d, want June 10", d.Month, d.Day)
				}
			}
		}
		if flagged != 1 {
			t.Errorf("%d cells flagged as today, want 1", flagged)
		}
	})

	t.Run("today outside displayed month flags nothing", func(t *testing.T) {
		// May 31 appears as a leading cell of the June grid but belongs
		// to the adjacent month, so it must not carry the flag.
		days := BuildMonth(month, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), time.Monday)
		for _, d := range days {
			if d.IsToday {
				t.Errorf("cell %v %d flagged as today", d.Month, d.Day)
			}
		}
	})
}
