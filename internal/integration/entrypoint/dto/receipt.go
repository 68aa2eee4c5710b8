// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/billwise/backend/internal/application/usecase/receipt"

// ScanReceiptRequest represents the request body for receipt scanning.
type ScanReceiptRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type,omitempty"`
}

// ScanReceiptResponse represents the structured fields extracted from a receipt.
type ScanReceiptResponse struct {
	Merchant          string  `json:"merchant"`
	Amount            *string `json:"amount,omitempty"`
	Date              *string `json:"date,omitempty"`
	SuggestedCategory string  `json:"suggested_category"`
	Confidence        float64 `json:"confidence"`
}

// ToScanReceiptResponse converts a ScanReceiptOutput to ScanReceiptResponse.
func ToScanReceiptResponse(output *receipt.ScanReceiptOutput) ScanReceiptResponse {
	response := ScanReceiptResponse{
		Merchant:          output.Merchant,
		SuggestedCategory: output.SuggestedCategory,
		Confidence:        output.Confidence,
	}

	if output.Amount != nil {
		amount := output.Amount.String()
		response.Amount = &amount
	}

	if output.Date != nil {
		date := output.Date.Format("2006-01-02")
		response.Date = &date
	}

	return response
}
