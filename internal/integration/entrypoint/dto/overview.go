// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/billwise/backend/internal/application/usecase/overview"

// OverviewResponse represents the home-screen summary in API responses.
type OverviewResponse struct {
	Month           string `json:"month"`
	PaidCount       int    `json:"paid_count"`
	UpcomingCount   int    `json:"upcoming_count"`
	DueSoonCount    int    `json:"due_soon_count"`
	OverdueCount    int    `json:"overdue_count"`
	MonthBillCount  int    `json:"month_bill_count"`
	MonthBillTotal  string `json:"month_bill_total"`
	TotalOwed       string `json:"total_owed"`
	TotalReceivable string `json:"total_receivable"`
}

// ToOverviewResponse converts a GetOverviewOutput to OverviewResponse.
func ToOverviewResponse(output *overview.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Month:           output.Month,
		PaidCount:       output.PaidCount,
		UpcomingCount:   output.UpcomingCount,
		DueSoonCount:    output.DueSoonCount,
		OverdueCount:    output.OverdueCount,
		MonthBillCount:  output.MonthBillCount,
		MonthBillTotal:  output.MonthBillTotal.String(),
		TotalOwed:       output.TotalOwed.String(),
		TotalReceivable: output.TotalReceivable.String(),
	}
}
