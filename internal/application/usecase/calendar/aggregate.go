// Package calendar contains calendar view use cases.
package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

// BucketByDay folds a bill list into per-day buckets for the displayed month.
// Only bills whose due date actually falls inside the month are bucketed;
// bills due in adjacent months never leak into same-numbered grid cells.
// Every bucketed bill appears in exactly one bucket.
func BucketByDay(bills []*entity.Bill, month valueobject.Month) map[int][]*entity.Bill {
	buckets := make(map[int][]*entity.Bill)
	for _, b := range bills {
		if !month.Contains(b.DueDate) {
			continue
		}
		day := b.DueDate.Day()
		buckets[day] = append(buckets[day], b)
	}
	return buckets
}

// MonthlyTotal returns the count and summed estimated amount of the bills
// due in the displayed month.
func MonthlyTotal(bills []*entity.Bill, month valueobject.Month) (int, decimal.Decimal) {
	count := 0
	sum := decimal.Zero
	for _, b := range bills {
		if !month.Contains(b.DueDate) {
			continue
		}
		count++
		sum = sum.Add(b.EstimatedAmount)
	}
	return count, sum
}
