// Package bill contains bill-related use cases.
package bill

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/domain/entity"
)

func testBill(due time.Time, cycle entity.RepeatCycle) *entity.Bill {
	return &entity.Bill{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Name:            "Electricity",
		EstimatedAmount: decimal.NewFromFloat(120.50),
		DueDate:         due,
		RepeatCycle:     cycle,
		IsActive:        true,
	}
}

func TestClassify_DayDistanceBoundaries(t *testing.T) {
	due := date(2025, time.June, 15)

	tests := []struct {
		name       string
		asOf       time.Time
		wantStatus entity.BillStatus
		wantDays   int
	}{
		{"five days early is upcoming", date(2025, time.June, 10), entity.BillStatusUpcoming, 5},
		{"four days early is upcoming", date(2025, time.June, 11), entity.BillStatusUpcoming, 4},
		{"three days early is due soon", date(2025, time.June, 12), entity.BillStatusDueSoon, 3},
		{"two days early is due soon", date(2025, time.June, 13), entity.BillStatusDueSoon, 2},
		{"one day early is due soon", date(2025, time.June, 14), entity.BillStatusDueSoon, 1},
		{"due today is due soon", date(2025, time.June, 15), entity.BillStatusDueSoon, 0},
		{"one day late is overdue", date(2025, time.June, 16), entity.BillStatusOverdue, -1},
		{"five days late is overdue", date(2025, time.June, 20), entity.BillStatusOverdue, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBill(due, entity.RepeatCycleMonthly)
			status, days := Classify(b, tt.asOf)
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
			if days != tt.wantDays {
				t.Errorf("daysToDue = %d, want %d", days, tt.wantDays)
			}
		})
	}
}

func TestClassify_PaidCurrentCycle(t *testing.T) {
	// Monthly bill due Jul 15: the current cycle window opens Jun 15.
	due := date(2025, time.July, 15)

	t.Run("payment inside cycle window marks paid", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		paid := date(2025, time.June, 20)
		b.LastPaymentDate = &paid

		status, days := Classify(b, date(2025, time.June, 25))
		if status != entity.BillStatusPaid {
			t.Errorf("status = %s, want %s", status, entity.BillStatusPaid)
		}
		if days != 20 {
			t.Errorf("daysToDue = %d, want 20", days)
		}
	})

	t.Run("payment on cycle start marks paid", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		paid := date(2025, time.June, 15)
		b.LastPaymentDate = &paid

		status, _ := Classify(b, date(2025, time.June, 16))
		if status != entity.BillStatusPaid {
			t.Errorf("status = %s, want %s", status, entity.BillStatusPaid)
		}
	})

	t.Run("payment before cycle window does not mark paid", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		paid := date(2025, time.June, 10)
		b.LastPaymentDate = &paid

		status, _ := Classify(b, date(2025, time.June, 25))
		if status != entity.BillStatusUpcoming {
			t.Errorf("status = %s, want %s", status, entity.BillStatusUpcoming)
		}
	})

	t.Run("no payment recorded never marks paid", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		status, _ := Classify(b, date(2025, time.July, 14))
		if status != entity.BillStatusDueSoon {
			t.Errorf("status = %s, want %s", status, entity.BillStatusDueSoon)
		}
	})

	t.Run("new occurrence is unpaid once due date arrives", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		paid := date(2025, time.June, 20)
		b.LastPaymentDate = &paid

		status, days := Classify(b, date(2025, time.July, 15))
		if status != entity.BillStatusDueSoon {
			t.Errorf("status = %s, want %s", status, entity.BillStatusDueSoon)
		}
		if days != 0 {
			t.Errorf("daysToDue = %d, want 0", days)
		}
	})

	t.Run("payment after asOf does not mark paid", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleMonthly)
		paid := date(2025, time.July, 10)
		b.LastPaymentDate = &paid

		status, _ := Classify(b, date(2025, time.June, 25))
		if status != entity.BillStatusUpcoming {
			t.Errorf("status = %s, want %s", status, entity.BillStatusUpcoming)
		}
	})

	t.Run("custom cycle without interval has no paid window", func(t *testing.T) {
		b := testBill(due, entity.RepeatCycleCustom)
		paid := date(2025, time.July, 1)
		b.LastPaymentDate = &paid

		status, _ := Classify(b, date(2025, time.July, 5))
		if status != entity.BillStatusUpcoming {
			t.Errorf("status = %s, want %s", status, entity.BillStatusUpcoming)
		}
	})
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		asOf time.Time
		want int
	}{
		{
			name: "same day",
			due:  date(2025, time.June, 15),
			asOf: date(2025, time.June, 15),
			want: 0,
		},
		{
			name: "time of day ignored on due date",
			due:  time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC),
			asOf: time.Date(2025, time.June, 15, 0, 1, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "late evening reference still counts full days",
			due:  date(2025, time.June, 16),
			asOf: time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "zone offset does not shift the count",
			due:  date(2025, time.June, 16),
			asOf: time.Date(2025, time.June, 15, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: 1,
		},
		{
			name: "past due date is negative",
			due:  date(2025, time.June, 10),
			asOf: date(2025, time.June, 15),
			want: -5,
		},
		{
			name: "across month boundary",
			due:  date(2025, time.July, 2),
			asOf: date(2025, time.June, 28),
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.due, tt.asOf); got != tt.want {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.due, tt.asOf, got, tt.want)
			}
		})
	}
}

func TestProject(t *testing.T) {
	b := testBill(date(2025, time.June, 15), entity.RepeatCycleMonthly)
	got := Project(b, date(2025, time.June, 13))

	if got.Bill != b {
		t.Error("expected projection to carry the bill")
	}
	if got.Status != entity.BillStatusDueSoon {
		t.Errorf("status = %s, want %s", got.Status, entity.BillStatusDueSoon)
	}
	if got.DaysToDue != 2 {
		t.Errorf("daysToDue = %d, want 2", got.DaysToDue)
	}
	if want := date(2025, time.July, 15); !got.NextDue.Equal(want) {
		t.Errorf("nextDue = %v, want %v", got.NextDue, want)
	}
}
