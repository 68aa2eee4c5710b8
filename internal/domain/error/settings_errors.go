// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Settings and app-lock PIN domain errors.
var (
	// ErrInvalidTheme is returned when the theme value is unknown.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidDateFormat is returned when the date format value is unknown.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidFirstDayOfWeek is returned when the first-day-of-week value is unknown.
	ErrInvalidFirstDayOfWeek = errors.New("invalid first day of week")

	// ErrInvalidCurrency is returned when the currency code is not three letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidPin is returned when the PIN format is invalid.
	ErrInvalidPin = errors.New("PIN must be 4 to 6 digits")

	// ErrPinNotSet is returned when verifying or disabling a PIN that was never set.
	ErrPinNotSet = errors.New("PIN is not configured")

	// ErrPinMismatch is returned when PIN verification fails.
	ErrPinMismatch = errors.New("incorrect PIN")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTheme          SettingsErrorCode = "SET-010001"
	ErrCodeInvalidDateFormat     SettingsErrorCode = "SET-010002"
	ErrCodeInvalidFirstDayOfWeek SettingsErrorCode = "SET-010003"
	ErrCodeInvalidCurrency       SettingsErrorCode = "SET-010004"
	ErrCodeInvalidPin            SettingsErrorCode = "SET-010005"

	// State errors (02XXXX)
	ErrCodePinNotSet   SettingsErrorCode = "SET-020001"
	ErrCodePinMismatch SettingsErrorCode = "SET-020002"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
