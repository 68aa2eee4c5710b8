// Package valueobject defines immutable domain value types.
package valueobject

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{input: "2025-06", want: Month{Year: 2025, Month: time.June}},
		{input: "2024-02", want: Month{Year: 2024, Month: time.February}},
		{input: "2025-13", wantErr: true},
		{input: "2025-00", wantErr: true},
		{input: "June 2025", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMonth(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMonth_String(t *testing.T) {
	if got := NewMonth(2025, time.June).String(); got != "2025-06" {
		t.Errorf("String() = %q, want %q", got, "2025-06")
	}
	if got := NewMonth(2025, time.December).String(); got != "2025-12" {
		t.Errorf("String() = %q, want %q", got, "2025-12")
	}
}

func TestMonth_Days(t *testing.T) {
	tests := []struct {
		month Month
		want  int
	}{
		{NewMonth(2025, time.January), 31},
		{NewMonth(2025, time.February), 28},
		{NewMonth(2024, time.February), 29},
		{NewMonth(2025, time.April), 30},
		{NewMonth(2100, time.February), 28}, // century non-leap
		{NewMonth(2000, time.February), 29}, // quadricentennial leap
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			if got := tt.month.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonth_NextPrevious(t *testing.T) {
	june := NewMonth(2025, time.June)
	if got := june.Next(); got != NewMonth(2025, time.July) {
		t.Errorf("Next() = %v, want 2025-07", got)
	}
	if got := june.Previous(); got != NewMonth(2025, time.May) {
		t.Errorf("Previous() = %v, want 2025-05", got)
	}

	dec := NewMonth(2025, time.December)
	if got := dec.Next(); got != NewMonth(2026, time.January) {
		t.Errorf("Next() across year = %v, want 2026-01", got)
	}
	jan := NewMonth(2025, time.January)
	if got := jan.Previous(); got != NewMonth(2024, time.December) {
		t.Errorf("Previous() across year = %v, want 2024-12", got)
	}
}

func TestMonth_Contains(t *testing.T) {
	june := NewMonth(2025, time.June)

	if !june.Contains(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected first day to be contained")
	}
	if !june.Contains(time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)) {
		t.Error("expected last instant to be contained")
	}
	if june.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected next month's first day to be excluded")
	}
	if june.Contains(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected same month of another year to be excluded")
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf(time.Date(2025, time.June, 17, 12, 0, 0, 0, time.UTC)); got != NewMonth(2025, time.June) {
		t.Errorf("MonthOf = %v, want 2025-06", got)
	}
}
