package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestDayBounds(t *testing.T) {
	loc := mustLocation(t)

	// 01:30 UTC is still the previous day in Sao Paulo (UTC-3).
	now := time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC)
	start, end := DayBounds(now, loc)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), end)
}

func TestBetween(t *testing.T) {
	loc := time.UTC
	start := time.Date(2025, 5, 20, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	txns := []models.Transaction{
		{Description: "yesterday", Timestamp: start.Add(-time.Second)},
		{Description: "midnight", Timestamp: start},
		{Description: "noon", Timestamp: start.Add(12 * time.Hour)},
		{Description: "tomorrow", Timestamp: end},
	}

	got := Between(txns, start, end)
	require.Len(t, got, 2)
	assert.Equal(t, "midnight", got[0].Description)
	assert.Equal(t, "noon", got[1].Description)
}

func TestSum(t *testing.T) {
	txns := []models.Transaction{
		{Type: models.TypeExpense, Value: decimal.RequireFromString("20.50")},
		{Type: models.TypeIncome, Value: decimal.RequireFromString("100")},
		{Type: models.TypeExpense, Value: decimal.RequireFromString("9.50")},
		{Type: "other", Value: decimal.RequireFromString("1000")},
	}

	totals := Sum(txns)

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(30)))
	assert.True(t, totals.Balance().Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 1, totals.IncomeCount)
	assert.Equal(t, 2, totals.ExpenseCount)
}

func TestSum_Empty(t *testing.T) {
	totals := Sum(nil)
	assert.True(t, totals.Balance().IsZero())
	assert.Zero(t, totals.IncomeCount)
}

func TestRecent(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Description: "a", Timestamp: base},
		{Description: "c", Timestamp: base.Add(2 * time.Hour)},
		{Description: "b", Timestamp: base.Add(time.Hour)},
	}

	got := Recent(txns, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Description)
	assert.Equal(t, "b", got[1].Description)

	assert.Equal(t, "a", txns[0].Description, "input must keep its order")
}
