// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReceiptFields holds the structured fields extracted from a receipt image.
type ReceiptFields struct {
	Merchant          string
	Amount            string // decimal string, parsed by the caller
	Date              *time.Time
	SuggestedCategory string
	Confidence        float64
}

// ReceiptScanner defines the interface for extracting structured bill fields
// from a receipt image. Implementations are opaque services; the core never
// inspects how extraction happens.
type ReceiptScanner interface {
	// IsAvailable reports whether the scanner is configured and usable.
	IsAvailable() bool

	// Scan extracts structured fields from the given image bytes.
	Scan(ctx context.Context, image []byte, mimeType string) (*ReceiptFields, error)
}
