// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme represents the user's preferred UI theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DateFormat represents the user's preferred date format.
type DateFormat string

const (
	DateFormatDMY DateFormat = "DD/MM/YYYY"
	DateFormatMDY DateFormat = "MM/DD/YYYY"
	DateFormatYMD DateFormat = "YYYY-MM-DD"
)

// FirstDayOfWeek represents the user's preferred first day of the week.
// The calendar grid honors this preference when laying out a month.
type FirstDayOfWeek string

const (
	FirstDayOfWeekSunday FirstDayOfWeek = "sunday"
	FirstDayOfWeekMonday FirstDayOfWeek = "monday"
)

// User represents a user in the BillWise system.
type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	PasswordHash   string
	Theme          Theme
	Language       string
	Currency       string
	DateFormat     DateFormat
	FirstDayOfWeek FirstDayOfWeek
	BillReminders  bool
	PinHash        *string // nil when app-lock PIN is not configured
	PinEnabled     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewUser creates a new User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		PasswordHash:   passwordHash,
		Theme:          ThemeSystem,
		Language:       "pt-BR",
		Currency:       "BRL",
		DateFormat:     DateFormatDMY,
		FirstDayOfWeek: FirstDayOfWeekSunday,
		BillReminders:  true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Weekday returns the time.Weekday matching the user's first-day-of-week preference.
func (f FirstDayOfWeek) Weekday() time.Weekday {
	if f == FirstDayOfWeekMonday {
		return time.Monday
	}
	return time.Sunday
}
