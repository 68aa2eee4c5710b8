// Package bill contains bill-related use cases.
package bill

import (
	"testing"
	"time"

	"github.com/billwise/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		current  time.Time
		cycle    entity.RepeatCycle
		interval int
		want     time.Time
	}{
		{
			name:    "daily advances one day",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleDaily,
			want:    date(2025, time.March, 16),
		},
		{
			name:    "daily crosses month boundary",
			current: date(2025, time.March, 31),
			cycle:   entity.RepeatCycleDaily,
			want:    date(2025, time.April, 1),
		},
		{
			name:    "weekly advances seven days",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleWeekly,
			want:    date(2025, time.March, 22),
		},
		{
			name:    "monthly keeps day of month",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2025, time.April, 15),
		},
		{
			name:    "monthly clamps Jan 31 to Feb 28",
			current: date(2025, time.January, 31),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2025, time.February, 28),
		},
		{
			name:    "monthly clamps Jan 31 to Feb 29 in leap year",
			current: date(2024, time.January, 31),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2024, time.February, 29),
		},
		{
			name:    "monthly clamps Mar 31 to Apr 30",
			current: date(2025, time.March, 31),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2025, time.April, 30),
		},
		{
			name:    "monthly crosses year boundary",
			current: date(2025, time.December, 10),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2026, time.January, 10),
		},
		{
			name:    "yearly keeps month and day",
			current: date(2025, time.June, 10),
			cycle:   entity.RepeatCycleYearly,
			want:    date(2026, time.June, 10),
		},
		{
			name:    "yearly clamps Feb 29 to Feb 28 on non-leap target",
			current: date(2024, time.February, 29),
			cycle:   entity.RepeatCycleYearly,
			want:    date(2025, time.February, 28),
		},
		{
			name:     "custom advances by interval days",
			current:  date(2025, time.March, 15),
			cycle:    entity.RepeatCycleCustom,
			interval: 10,
			want:     date(2025, time.March, 25),
		},
		{
			name:    "custom without interval is identity",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleCustom,
			want:    date(2025, time.March, 15),
		},
		{
			name:    "unknown cycle is identity",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycle("fortnightly"),
			want:    date(2025, time.March, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.current, tt.cycle, tt.interval)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence(%v, %s, %d) = %v, want %v", tt.current, tt.cycle, tt.interval, got, tt.want)
			}
		})
	}
}

func TestNextOccurrence_PreservesTimeOfDay(t *testing.T) {
	current := time.Date(2025, time.January, 31, 14, 30, 45, 0, time.UTC)
	got := NextOccurrence(current, entity.RepeatCycleMonthly, 0)
	want := time.Date(2025, time.February, 28, 14, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence = %v, want %v", got, want)
	}
}

func TestPreviousOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		current  time.Time
		cycle    entity.RepeatCycle
		interval int
		want     time.Time
	}{
		{
			name:    "daily retreats one day",
			current: date(2025, time.March, 1),
			cycle:   entity.RepeatCycleDaily,
			want:    date(2025, time.February, 28),
		},
		{
			name:    "weekly retreats seven days",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleWeekly,
			want:    date(2025, time.March, 8),
		},
		{
			name:    "monthly retreats a month",
			current: date(2025, time.April, 15),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2025, time.March, 15),
		},
		{
			name:    "monthly clamps Mar 31 back to Feb 28",
			current: date(2025, time.March, 31),
			cycle:   entity.RepeatCycleMonthly,
			want:    date(2025, time.February, 28),
		},
		{
			name:    "yearly retreats a year",
			current: date(2026, time.June, 10),
			cycle:   entity.RepeatCycleYearly,
			want:    date(2025, time.June, 10),
		},
		{
			name:     "custom retreats by interval days",
			current:  date(2025, time.March, 25),
			cycle:    entity.RepeatCycleCustom,
			interval: 10,
			want:     date(2025, time.March, 15),
		},
		{
			name:    "custom without interval is identity",
			current: date(2025, time.March, 15),
			cycle:   entity.RepeatCycleCustom,
			want:    date(2025, time.March, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousOccurrence(tt.current, tt.cycle, tt.interval)
			if !got.Equal(tt.want) {
				t.Errorf("PreviousOccurrence(%v, %s, %d) = %v, want %v", tt.current, tt.cycle, tt.interval, got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceAfter(t *testing.T) {
	tests := []struct {
		name     string
		current  time.Time
		cycle    entity.RepeatCycle
		interval int
		after    time.Time
		want     time.Time
	}{
		{
			name:    "already after reference is unchanged",
			current: date(2025, time.June, 15),
			cycle:   entity.RepeatCycleMonthly,
			after:   date(2025, time.June, 1),
			want:    date(2025, time.June, 15),
		},
		{
			name:    "single cycle catch-up",
			current: date(2025, time.May, 15),
			cycle:   entity.RepeatCycleMonthly,
			after:   date(2025, time.June, 1),
			want:    date(2025, time.June, 15),
		},
		{
			name:    "multiple cycles skipped",
			current: date(2025, time.January, 15),
			cycle:   entity.RepeatCycleMonthly,
			after:   date(2025, time.June, 1),
			want:    date(2025, time.June, 15),
		},
		{
			name:    "equal to reference advances strictly past it",
			current: date(2025, time.June, 1),
			cycle:   entity.RepeatCycleWeekly,
			after:   date(2025, time.June, 1),
			want:    date(2025, time.June, 8),
		},
		{
			name:    "weekly catch-up across many weeks",
			current: date(2025, time.January, 6),
			cycle:   entity.RepeatCycleWeekly,
			after:   date(2025, time.February, 10),
			want:    date(2025, time.February, 17),
		},
		{
			name:    "custom with no interval cannot advance",
			current: date(2025, time.January, 15),
			cycle:   entity.RepeatCycleCustom,
			after:   date(2025, time.June, 1),
			want:    date(2025, time.January, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrenceAfter(tt.current, tt.cycle, tt.interval, tt.after)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrenceAfter(%v, %s, %d, %v) = %v, want %v", tt.current, tt.cycle, tt.interval, tt.after, got, tt.want)
			}
		})
	}
}
