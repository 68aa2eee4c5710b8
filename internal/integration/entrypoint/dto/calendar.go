// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strconv"

	"github.com/billwise/backend/internal/application/usecase/calendar"
)

// CalendarDayResponse represents one cell of the month grid.
type CalendarDayResponse struct {
	Day            int    `json:"day"`
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
}

// CalendarDayBillResponse represents one bill inside a day bucket.
type CalendarDayBillResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EstimatedAmount string `json:"estimated_amount"`
	Status          string `json:"status"`
	DaysToDue       int    `json:"days_to_due"`
	AutoPay         bool   `json:"auto_pay"`
}

// CalendarMonthResponse represents the rendered month view.
type CalendarMonthResponse struct {
	Month      string                               `json:"month"`
	Days       []CalendarDayResponse                `json:"days"`
	BillsByDay map[string][]CalendarDayBillResponse `json:"bills_by_day"`
	TotalCount int                                  `json:"total_count"`
	TotalSum   string                               `json:"total_sum"`
}

// ToCalendarMonthResponse converts a GetMonthOutput to CalendarMonthResponse.
func ToCalendarMonthResponse(output *calendar.GetMonthOutput) CalendarMonthResponse {
	days := make([]CalendarDayResponse, len(output.Days))
	for i, day := range output.Days {
		days[i] = CalendarDayResponse{
			Day:            day.Day,
			Date:           day.Date().Format("2006-01-02"),
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
		}
	}

	billsByDay := make(map[string][]CalendarDayBillResponse, len(output.BillsByDay))
	for day, dayBills := range output.BillsByDay {
		bills := make([]CalendarDayBillResponse, len(dayBills))
		for i, b := range dayBills {
			bills[i] = CalendarDayBillResponse{
				ID:              b.ID.String(),
				Name:            b.Name,
				EstimatedAmount: b.EstimatedAmount.String(),
				Status:          string(b.Status),
				DaysToDue:       b.DaysToDue,
				AutoPay:         b.AutoPay,
			}
		}
		billsByDay[strconv.Itoa(day)] = bills
	}

	return CalendarMonthResponse{
		Month:      output.Month,
		Days:       days,
		BillsByDay: billsByDay,
		TotalCount: output.TotalCount,
		TotalSum:   output.TotalSum.String(),
	}
}
