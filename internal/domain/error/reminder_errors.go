// Package error defines domain-specific errors for the BillWise application.
package error

// ReminderErrorCode defines error codes for reminder email errors.
// Format: RMD-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeReminderQueueFailed ReminderErrorCode = "RMD-010001"

	// Delivery errors (02XXXX)
	ErrCodeTemporaryEmailFailure ReminderErrorCode = "RMD-020001"
	ErrCodePermanentEmailFailure ReminderErrorCode = "RMD-020002"
)

// ReminderError represents a reminder email error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanent reports whether the error should not be retried.
func (e *ReminderError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}
