package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as an expense or an income.
type TransactionType string

// Supported transaction types. The values are stored as-is in the database.
const (
	TypeExpense TransactionType = "gasto"
	TypeIncome  TransactionType = "lucro"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a stored income or expense record owned by a user.
type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`                   // Assigned by the store
	Type        TransactionType `json:"type" db:"type"`               // gasto or lucro
	Value       decimal.Decimal `json:"value" db:"value"`             // Non-negative amount
	Description string          `json:"description" db:"description"` // Free-text label
	Timestamp   time.Time       `json:"timestamp" db:"created_at"`    // When the transaction was recorded
	UserPhone   string          `json:"user_phone" db:"user_phone"`   // Owner, assigned by the store
}

// NewTransaction is a transaction that has not been stored yet.
// The store assigns ID and UserPhone when it is saved.
type NewTransaction struct {
	Type        TransactionType
	Value       decimal.Decimal
	Description string
	Timestamp   time.Time
}

// TransactionEvent is published to Kafka after a transaction is stored.
type TransactionEvent struct {
	TransactionID string          `json:"transaction_id"`
	UserPhone     string          `json:"user_phone"`
	Type          TransactionType `json:"type"`
	Value         decimal.Decimal `json:"value"`
	Description   string          `json:"description"`
	Timestamp     int64           `json:"timestamp"` // Unix seconds
}

// NewTransactionEvent builds the event payload for a stored transaction.
func NewTransactionEvent(txn Transaction) TransactionEvent {
	return TransactionEvent{
		TransactionID: txn.ID.String(),
		UserPhone:     txn.UserPhone,
		Type:          txn.Type,
		Value:         txn.Value,
		Description:   txn.Description,
		Timestamp:     txn.Timestamp.Unix(),
	}
}
