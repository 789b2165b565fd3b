package models

import "github.com/shopspring/decimal"

// Totals aggregates income and expenses over a set of transactions.
type Totals struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

// Balance returns income minus expenses.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// DailySummary is the dashboard view of a user's finances.
type DailySummary struct {
	Date    string        `json:"date"` // YYYY-MM-DD in the service time zone
	Today   Totals        `json:"today"`
	Overall Totals        `json:"overall"`
	Recent  []Transaction `json:"recent"`
}

// PeriodReport lists a user's transactions between two dates with their totals.
type PeriodReport struct {
	Start        string        `json:"start"` // YYYY-MM-DD
	End          string        `json:"end"`   // YYYY-MM-DD
	Totals       Totals        `json:"totals"`
	Transactions []Transaction `json:"transactions"`
}

// CachedResponse is an HTTP response stored under an idempotency key.
type CachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}
