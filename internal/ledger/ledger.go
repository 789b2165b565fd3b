// Package ledger holds the aggregation helpers shared by the chat processor and the reports.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// DayBounds returns the local calendar day containing t as the half-open range [start, end).
func DayBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	lt := t.In(loc)
	start = time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// Between returns the transactions with from <= Timestamp < to, keeping their order.
func Between(txns []models.Transaction, from, to time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Timestamp.Before(from) || !txn.Timestamp.Before(to) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// Sum totals income and expenses. Transactions of unknown type are ignored.
func Sum(txns []models.Transaction) models.Totals {
	totals := models.Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case models.TypeIncome:
			totals.Income = totals.Income.Add(txn.Value)
			totals.IncomeCount++
		case models.TypeExpense:
			totals.Expense = totals.Expense.Add(txn.Value)
			totals.ExpenseCount++
		}
	}
	return totals
}

// Recent returns up to n transactions, newest first. The input slice is not modified.
func Recent(txns []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
