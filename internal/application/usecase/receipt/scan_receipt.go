// Package receipt contains the receipt scanning use case.
package receipt

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// MaxReceiptImageBytes caps decoded receipt uploads at 10 MB.
const MaxReceiptImageBytes = 10 << 20

// ScanReceiptInput represents the input for receipt scanning.
type ScanReceiptInput struct {
	ImageBase64 string
	MimeType    string // Optional, defaults to image/jpeg
}

// ScanReceiptOutput represents the structured fields extracted from a receipt.
type ScanReceiptOutput struct {
	Merchant          string
	Amount            *decimal.Decimal
	Date              *time.Time
	SuggestedCategory string
	Confidence        float64
}

// ScanReceiptUseCase handles extracting bill fields from a receipt image.
type ScanReceiptUseCase struct {
	scanner adapter.ReceiptScanner
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(scanner adapter.ReceiptScanner) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		scanner: scanner,
	}
}

// Execute decodes the image and delegates extraction to the scanner. Fields
// the scanner could not read come back empty; the client prefills a bill
// form with whatever was extracted.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*ScanReceiptOutput, error) {
	if !uc.scanner.IsAvailable() {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptScannerUnavailable,
			"receipt scanning is not configured",
			domainerror.ErrReceiptScannerUnavailable,
		)
	}

	// Tolerate data URI prefixes from mobile clients
	payload := input.ImageBase64
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(image) == 0 || len(image) > MaxReceiptImageBytes {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeInvalidReceiptImage,
			"image must be valid base64 up to 10MB",
			domainerror.ErrInvalidReceiptImage,
		)
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	fields, err := uc.scanner.Scan(ctx, image, mimeType)
	if err != nil {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptExtractionFailed,
			"failed to extract receipt fields",
			err,
		)
	}

	output := &ScanReceiptOutput{
		Merchant:          fields.Merchant,
		Date:              fields.Date,
		SuggestedCategory: fields.SuggestedCategory,
		Confidence:        fields.Confidence,
	}

	if fields.Amount != "" {
		if amount, err := decimal.NewFromString(fields.Amount); err == nil && amount.IsPositive() {
			output.Amount = &amount
		}
	}

	return output, nil
}
