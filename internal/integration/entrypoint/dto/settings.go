// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateSettingsRequest represents the request body for updating user preferences.
type UpdateSettingsRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Theme          *string `json:"theme,omitempty"`
	Language       *string `json:"language,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	DateFormat     *string `json:"date_format,omitempty"`
	FirstDayOfWeek *string `json:"first_day_of_week,omitempty"`
	BillReminders  *bool   `json:"bill_reminders,omitempty"`
}

// SetPinRequest represents the request body for configuring the app-lock PIN.
type SetPinRequest struct {
	Pin        string `json:"pin" binding:"required"`
	CurrentPin string `json:"current_pin,omitempty"`
}

// VerifyPinRequest represents the request body for app-lock PIN verification.
type VerifyPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// DisablePinRequest represents the request body for removing the app-lock PIN.
type DisablePinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// VerifyPinResponse represents the response for app-lock PIN verification.
type VerifyPinResponse struct {
	Valid bool `json:"valid"`
}
