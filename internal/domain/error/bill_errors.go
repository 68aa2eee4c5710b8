// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found in the system.
	ErrBillNotFound = errors.New("bill not found")

	// ErrBillNameRequired is returned when the bill name is blank.
	ErrBillNameRequired = errors.New("bill name is required")

	// ErrInvalidBillAmount is returned when the estimated amount is negative.
	ErrInvalidBillAmount = errors.New("estimated amount must not be negative")

	// ErrInvalidRepeatCycle is returned when the repeat cycle is unknown.
	ErrInvalidRepeatCycle = errors.New("invalid repeat cycle")

	// ErrCustomIntervalRequired is returned when a custom cycle has no interval.
	ErrCustomIntervalRequired = errors.New("custom repeat cycle requires an interval in days")

	// ErrInvalidPaymentAmount is returned when a payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrUnauthorizedBillAccess is returned when user is not authorized to access a bill.
	ErrUnauthorizedBillAccess = errors.New("unauthorized access to bill")

	// ErrBillCategoryNotFound is returned when the category for a bill is not found.
	ErrBillCategoryNotFound = errors.New("category not found")

	// ErrBillInactive is returned when recording a payment against a deactivated bill.
	ErrBillInactive = errors.New("bill is inactive")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBillNameRequired       BillErrorCode = "BIL-010001"
	ErrCodeInvalidBillAmount      BillErrorCode = "BIL-010002"
	ErrCodeInvalidRepeatCycle     BillErrorCode = "BIL-010003"
	ErrCodeCustomIntervalRequired BillErrorCode = "BIL-010004"
	ErrCodeInvalidPaymentAmount   BillErrorCode = "BIL-010005"
	ErrCodeMissingBillFields      BillErrorCode = "BIL-010006"

	// Access errors (02XXXX)
	ErrCodeBillNotFound           BillErrorCode = "BIL-020001"
	ErrCodeUnauthorizedBillAccess BillErrorCode = "BIL-020002"
	ErrCodeBillCategoryNotFound   BillErrorCode = "BIL-020003"

	// State errors (03XXXX)
	ErrCodeBillInactive BillErrorCode = "BIL-030001"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
