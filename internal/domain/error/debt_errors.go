// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrDebtCounterpartyRequired is returned when the counterparty name is blank.
	ErrDebtCounterpartyRequired = errors.New("counterparty name is required")

	// ErrInvalidDebtType is returned when the debt type is unknown.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidDebtAmount is returned when the total amount is not positive.
	ErrInvalidDebtAmount = errors.New("total amount must be greater than zero")

	// ErrInvalidDebtPayment is returned when a payment amount is not positive.
	ErrInvalidDebtPayment = errors.New("payment amount must be greater than zero")

	// ErrUnauthorizedDebtAccess is returned when user is not authorized to access a debt.
	ErrUnauthorizedDebtAccess = errors.New("unauthorized access to debt")

	// ErrDebtAlreadySettled is returned when paying against a settled debt.
	ErrDebtAlreadySettled = errors.New("debt is already settled")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtCounterpartyRequired DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtType          DebtErrorCode = "DBT-010002"
	ErrCodeInvalidDebtAmount        DebtErrorCode = "DBT-010003"
	ErrCodeInvalidDebtPayment       DebtErrorCode = "DBT-010004"
	ErrCodeMissingDebtFields        DebtErrorCode = "DBT-010005"

	// Access errors (02XXXX)
	ErrCodeDebtNotFound           DebtErrorCode = "DBT-020001"
	ErrCodeUnauthorizedDebtAccess DebtErrorCode = "DBT-020002"

	// State errors (03XXXX)
	ErrCodeDebtAlreadySettled DebtErrorCode = "DBT-030001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
