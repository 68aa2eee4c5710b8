// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Receipt scanning domain errors.
var (
	// ErrReceiptScannerUnavailable is returned when the extraction service is not configured.
	ErrReceiptScannerUnavailable = errors.New("receipt scanner is not configured")

	// ErrInvalidReceiptImage is returned when the uploaded image cannot be decoded.
	ErrInvalidReceiptImage = errors.New("invalid receipt image")

	// ErrReceiptExtractionFailed is returned when the scanner returns no usable fields.
	ErrReceiptExtractionFailed = errors.New("failed to extract receipt fields")
)

// ReceiptErrorCode defines error codes for receipt errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReceiptImage ReceiptErrorCode = "RCP-010001"

	// Service errors (02XXXX)
	ErrCodeReceiptScannerUnavailable ReceiptErrorCode = "RCP-020001"
	ErrCodeReceiptExtractionFailed   ReceiptErrorCode = "RCP-020002"
)

// ReceiptError represents a receipt scanning error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
