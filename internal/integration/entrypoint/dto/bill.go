// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/billwise/backend/internal/application/usecase/bill"
	"github.com/billwise/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for bill creation.
type CreateBillRequest struct {
	Name               string  `json:"name" binding:"required,min=1,max=100"`
	EstimatedAmount    float64 `json:"estimated_amount" binding:"gte=0"`
	DueDate            string  `json:"due_date" binding:"required"`
	RepeatCycle        string  `json:"repeat_cycle" binding:"required,oneof=daily weekly monthly yearly custom"`
	CustomIntervalDays int     `json:"custom_interval_days,omitempty" binding:"omitempty,min=1"`
	CategoryID         *string `json:"category_id,omitempty"`
	Notes              string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	AutoPay            bool    `json:"auto_pay,omitempty"`
	NotifyEnabled      *bool   `json:"notify_enabled,omitempty"`
}

// UpdateBillRequest represents the request body for bill update.
type UpdateBillRequest struct {
	Name               *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EstimatedAmount    *float64 `json:"estimated_amount,omitempty" binding:"omitempty,gte=0"`
	DueDate            *string  `json:"due_date,omitempty"`
	RepeatCycle        *string  `json:"repeat_cycle,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly custom"`
	CustomIntervalDays *int     `json:"custom_interval_days,omitempty" binding:"omitempty,min=1"`
	CategoryID         *string  `json:"category_id,omitempty"`
	ClearCategory      bool     `json:"clear_category,omitempty"`
	Notes              *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	IsActive           *bool    `json:"is_active,omitempty"`
	AutoPay            *bool    `json:"auto_pay,omitempty"`
	NotifyEnabled      *bool    `json:"notify_enabled,omitempty"`
}

// RecordBillPaymentRequest represents the request body for recording a bill payment.
type RecordBillPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	PaidAt *string `json:"paid_at,omitempty"`
	Note   string  `json:"note,omitempty" binding:"omitempty,max=500"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	PaidAt string `json:"paid_at"`
	Note   string `json:"note,omitempty"`
}

// BillResponse represents a single bill in API responses.
type BillResponse struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	EstimatedAmount    string            `json:"estimated_amount"`
	DueDate            string            `json:"due_date"`
	RepeatCycle        string            `json:"repeat_cycle"`
	CustomIntervalDays int               `json:"custom_interval_days,omitempty"`
	CategoryID         *string           `json:"category_id,omitempty"`
	Notes              string            `json:"notes"`
	IsActive           bool              `json:"is_active"`
	AutoPay            bool              `json:"auto_pay"`
	NotifyEnabled      bool              `json:"notify_enabled"`
	LastPaymentDate    *string           `json:"last_payment_date,omitempty"`
	Payments           []PaymentResponse `json:"payments,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// BillWithStatusResponse represents a bill together with its derived status.
type BillWithStatusResponse struct {
	BillResponse
	Status    string `json:"status"`
	DaysToDue int    `json:"days_to_due"`
	NextDue   string `json:"next_due"`
}

// BillListResponse represents the response for listing bills.
type BillListResponse struct {
	Bills []BillWithStatusResponse `json:"bills"`
	Total int                      `json:"total"`
}

// RecordBillPaymentResponse represents the response for recording a bill payment.
type RecordBillPaymentResponse struct {
	Bill    BillResponse    `json:"bill"`
	Payment PaymentResponse `json:"payment"`
	NextDue string          `json:"next_due"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     payment.ID.String(),
		Amount: payment.Amount.String(),
		PaidAt: payment.PaidAt.Format("2006-01-02"),
		Note:   payment.Note,
	}
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO.
func ToBillResponse(b *entity.Bill) BillResponse {
	response := BillResponse{
		ID:                 b.ID.String(),
		Name:               b.Name,
		EstimatedAmount:    b.EstimatedAmount.String(),
		DueDate:            b.DueDate.Format("2006-01-02"),
		RepeatCycle:        string(b.RepeatCycle),
		CustomIntervalDays: b.CustomIntervalDays,
		Notes:              b.Notes,
		IsActive:           b.IsActive,
		AutoPay:            b.AutoPay,
		NotifyEnabled:      b.NotifyEnabled,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CategoryID != nil {
		categoryID := b.CategoryID.String()
		response.CategoryID = &categoryID
	}

	if b.LastPaymentDate != nil {
		lastPayment := b.LastPaymentDate.Format("2006-01-02")
		response.LastPaymentDate = &lastPayment
	}

	if len(b.Payments) > 0 {
		response.Payments = make([]PaymentResponse, len(b.Payments))
		for i, payment := range b.Payments {
			response.Payments[i] = ToPaymentResponse(payment)
		}
	}

	return response
}

// ToBillWithStatusResponse converts a BillWithStatus projection to its DTO.
func ToBillWithStatusResponse(projection *entity.BillWithStatus) BillWithStatusResponse {
	return BillWithStatusResponse{
		BillResponse: ToBillResponse(projection.Bill),
		Status:       string(projection.Status),
		DaysToDue:    projection.DaysToDue,
		NextDue:      projection.NextDue.Format("2006-01-02"),
	}
}

// ToBillListResponse converts a ListBillsOutput to BillListResponse.
func ToBillListResponse(output *bill.ListBillsOutput) BillListResponse {
	bills := make([]BillWithStatusResponse, len(output.Bills))
	for i, projection := range output.Bills {
		bills[i] = ToBillWithStatusResponse(projection)
	}

	return BillListResponse{
		Bills: bills,
		Total: len(bills),
	}
}
