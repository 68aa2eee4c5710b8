// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/billwise/backend/internal/application/usecase/debt"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Counterparty string  `json:"counterparty" binding:"required,min=1,max=100"`
	Type         string  `json:"type" binding:"required,oneof=debt receivable"`
	TotalAmount  float64 `json:"total_amount" binding:"required,gt=0"`
	DueDate      *string `json:"due_date,omitempty"`
	Notes        string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateDebtRequest represents the request body for debt update.
type UpdateDebtRequest struct {
	Counterparty *string  `json:"counterparty,omitempty" binding:"omitempty,min=1,max=100"`
	TotalAmount  *float64 `json:"total_amount,omitempty" binding:"omitempty,gt=0"`
	DueDate      *string  `json:"due_date,omitempty"`
	ClearDueDate bool     `json:"clear_due_date,omitempty"`
	Notes        *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// RecordDebtPaymentRequest represents the request body for recording a debt payment.
type RecordDebtPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	PaidAt *string `json:"paid_at,omitempty"`
	Note   string  `json:"note,omitempty" binding:"omitempty,max=500"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID           string            `json:"id"`
	Counterparty string            `json:"counterparty"`
	Type         string            `json:"type"`
	TotalAmount  string            `json:"total_amount"`
	PaidAmount   string            `json:"paid_amount"`
	Remaining    string            `json:"remaining"`
	Progress     float64           `json:"progress"`
	DueDate      *string           `json:"due_date,omitempty"`
	Notes        string            `json:"notes"`
	IsSettled    bool              `json:"is_settled"`
	Payments     []PaymentResponse `json:"payments,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts           []DebtResponse `json:"debts"`
	TotalOwed       string         `json:"total_owed"`
	TotalReceivable string         `json:"total_receivable"`
}

// RecordDebtPaymentResponse represents the response for recording a debt payment.
type RecordDebtPaymentResponse struct {
	Debt    DebtResponse    `json:"debt"`
	Payment PaymentResponse `json:"payment"`
}

// ToDebtResponse converts a DebtOutput projection to a DebtResponse DTO.
func ToDebtResponse(output *debt.DebtOutput) DebtResponse {
	d := output.Debt

	response := DebtResponse{
		ID:           d.ID.String(),
		Counterparty: d.Counterparty,
		Type:         string(d.Type),
		TotalAmount:  d.TotalAmount.String(),
		PaidAmount:   d.PaidAmount.String(),
		Remaining:    output.Remaining.String(),
		Progress:     output.Progress,
		Notes:        d.Notes,
		IsSettled:    d.IsSettled,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	if d.DueDate != nil {
		dueDate := d.DueDate.Format("2006-01-02")
		response.DueDate = &dueDate
	}

	if len(d.Payments) > 0 {
		response.Payments = make([]PaymentResponse, len(d.Payments))
		for i, payment := range d.Payments {
			response.Payments[i] = ToPaymentResponse(payment)
		}
	}

	return response
}

// ToDebtListResponse converts a ListDebtsOutput to DebtListResponse.
func ToDebtListResponse(output *debt.ListDebtsOutput) DebtListResponse {
	debts := make([]DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = ToDebtResponse(d)
	}

	return DebtListResponse{
		Debts:           debts,
		TotalOwed:       output.TotalOwed.String(),
		TotalReceivable: output.TotalReceivable.String(),
	}
}
