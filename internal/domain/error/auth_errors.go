// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken is returned when a JWT token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail        AuthErrorCode = "AUT-010001"
	ErrCodeWeakPassword        AuthErrorCode = "AUT-010002"
	ErrCodeEmailExists         AuthErrorCode = "AUT-010003"
	ErrCodeInvalidConfirmation AuthErrorCode = "AUT-010004"
	ErrCodeMissingFields       AuthErrorCode = "AUT-010005"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-020001"
	ErrCodeMissingToken       AuthErrorCode = "AUT-020002"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-020003"
	ErrCodeUserNotFound       AuthErrorCode = "AUT-020004"

	// Rate limiting errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
