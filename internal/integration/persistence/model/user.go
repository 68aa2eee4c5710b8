// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name           string         `gorm:"type:varchar(100);not null"`
	PasswordHash   string         `gorm:"type:varchar(255);not null"`
	Theme          string         `gorm:"type:varchar(10);default:'system'"`
	Language       string         `gorm:"type:varchar(10);default:'pt-BR'"`
	Currency       string         `gorm:"type:varchar(3);default:'BRL'"`
	DateFormat     string         `gorm:"type:varchar(20);default:'DD/MM/YYYY'"`
	FirstDayOfWeek string         `gorm:"type:varchar(10);default:'sunday'"`
	BillReminders  bool           `gorm:"default:true"`
	PinHash        *string        `gorm:"type:varchar(255)"`
	PinEnabled     bool           `gorm:"default:false"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
	DeletedAt      gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.User{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		PasswordHash:   m.PasswordHash,
		Theme:          entity.Theme(m.Theme),
		Language:       m.Language,
		Currency:       m.Currency,
		DateFormat:     entity.DateFormat(m.DateFormat),
		FirstDayOfWeek: entity.FirstDayOfWeek(m.FirstDayOfWeek),
		BillReminders:  m.BillReminders,
		PinHash:        m.PinHash,
		PinEnabled:     m.PinEnabled,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	var deletedAt gorm.DeletedAt
	if user.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *user.DeletedAt, Valid: true}
	}

	return &UserModel{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		PasswordHash:   user.PasswordHash,
		Theme:          string(user.Theme),
		Language:       user.Language,
		Currency:       user.Currency,
		DateFormat:     string(user.DateFormat),
		FirstDayOfWeek: string(user.FirstDayOfWeek),
		BillReminders:  user.BillReminders,
		PinHash:        user.PinHash,
		PinEnabled:     user.PinEnabled,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
