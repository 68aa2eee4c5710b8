// Package error defines domain-specific errors for the BillWise application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is blank.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameExists is returned when a category with the same name exists.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the limit.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when the color is not a valid hex value.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrUnauthorizedCategoryAccess is returned when user is not authorized to access a category.
	ErrUnauthorizedCategoryAccess = errors.New("unauthorized access to category")

	// ErrCategoryInUse is returned when deleting a category still referenced by bills.
	ErrCategoryInUse = errors.New("category is referenced by existing bills")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameTooLong  CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidColorFormat   CategoryErrorCode = "CAT-010004"

	// Access errors (02XXXX)
	ErrCodeCategoryNotFound           CategoryErrorCode = "CAT-020001"
	ErrCodeUnauthorizedCategoryAccess CategoryErrorCode = "CAT-020002"

	// State errors (03XXXX)
	ErrCodeCategoryInUse CategoryErrorCode = "CAT-030001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
