package models

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the subscription state of a user.
type UserStatus string

// Subscription states. The values are stored as-is and shown in the admin panel.
const (
	StatusTrial    UserStatus = "Teste 7 dias"
	StatusActive   UserStatus = "Ativado"
	StatusCanceled UserStatus = "Cancelado"
	StatusExpired  UserStatus = "Vencido"
)

// Trial and paid subscription lengths.
const (
	TrialPeriod      = 7 * 24 * time.Hour
	ActivationPeriod = 30 * 24 * time.Hour
)

// Valid reports whether s is a known subscription state.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusTrial, StatusActive, StatusCanceled, StatusExpired:
		return true
	}
	return false
}

// CanChat reports whether a user in this state may record and query transactions.
func (s UserStatus) CanChat() bool {
	return s == StatusTrial || s == StatusActive
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID      uuid.UUID  `json:"id" db:"user_id"`                // Primary key
	Phone       string     `json:"phone" db:"phone"`               // Digits only, unique
	Status      UserStatus `json:"status" db:"status"`             // Subscription state
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	ActivatedAt *time.Time `json:"activated_at" db:"activated_at"` // Last activation, if any
	ExpiresAt   *time.Time `json:"expires_at" db:"expires_at"`     // End of trial or paid period
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
