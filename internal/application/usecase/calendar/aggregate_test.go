// Package calendar contains calendar view use cases.
package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

func billDue(name string, amount float64, due time.Time) *entity.Bill {
	return &entity.Bill{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Name:            name,
		EstimatedAmount: decimal.NewFromFloat(amount),
		DueDate:         due,
		RepeatCycle:     entity.RepeatCycleMonthly,
		IsActive:        true,
	}
}

func TestBucketByDay(t *testing.T) {
	month := valueobject.NewMonth(2025, time.June)
	rent := billDue("Rent", 1500, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	power := billDue("Electricity", 120, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	water := billDue("Water", 45, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	julyRent := billDue("Rent", 1500, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	mayPhone := billDue("Phone", 60, time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC))

	buckets := BucketByDay([]*entity.Bill{rent, power, water, julyRent, mayPhone}, month)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if len(buckets[1]) != 1 || buckets[1][0].Name != "Rent" {
		t.Errorf("day 1 bucket = %v, want only Rent", buckets[1])
	}
	if len(buckets[15]) != 2 {
		t.Errorf("day 15 bucket has %d bills, want 2", len(buckets[15]))
	}

	// Same-numbered days in adjacent months never leak into the grid.
	for day, bills := range buckets {
		for _, b := range bills {
			if b.DueDate.Month() != time.June || b.DueDate.Year() != 2025 {
				t.Errorf("day %d bucket contains %s due %v", day, b.Name, b.DueDate)
			}
		}
	}
}

func TestBucketByDay_Empty(t *testing.T) {
	buckets := BucketByDay(nil, valueobject.NewMonth(2025, time.June))
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, want 0", len(buckets))
	}
}

func TestMonthlyTotal(t *testing.T) {
	month := valueobject.NewMonth(2025, time.June)
	bills := []*entity.Bill{
		billDue("Rent", 1500.00, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		billDue("Electricity", 120.50, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)),
		billDue("Phone", 60.00, time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)),
	}

	count, sum := MonthlyTotal(bills, month)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if want := decimal.NewFromFloat(1620.50); !sum.Equal(want) {
		t.Errorf("sum = %s, want %s", sum, want)
	}
}

func TestMonthlyTotal_NoBills(t *testing.T) {
	count, sum := MonthlyTotal(nil, valueobject.NewMonth(2025, time.June))
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !sum.IsZero() {
		t.Errorf("sum = %s, want 0", sum)
	}
}
