package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

var reportNow = time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)

func newReportService(ctrl *gomock.Controller) (*ReportService, *MockReportTransactionReader, *MockSummaryCache) {
	reader := NewMockReportTransactionReader(ctrl)
	cache := NewMockSummaryCache(ctrl)
	svc := NewReportService(reader, cache, time.UTC)
	svc.now = func() time.Time { return reportNow }
	return svc, reader, cache
}

func reportTxns() []models.Transaction {
	txns := make([]models.Transaction, 0, 8)
	for i := 0; i < 6; i++ {
		txns = append(txns, models.Transaction{
			Type:        models.TypeExpense,
			Value:       decimal.NewFromInt(10),
			Description: "old",
			Timestamp:   reportNow.AddDate(0, 0, -(i + 1)),
		})
	}
	txns = append(txns,
		models.Transaction{Type: models.TypeIncome, Value: decimal.NewFromInt(100), Description: "freelance", Timestamp: reportNow.Add(-time.Hour)},
		models.Transaction{Type: models.TypeExpense, Value: decimal.NewFromInt(20), Description: "marmita", Timestamp: reportNow.Add(-2 * time.Hour)},
	)
	return txns
}

func TestReportService_DailySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, cache := newReportService(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "5511999990000", "2025-06-15").Return(nil, nil)
	reader.EXPECT().ListByUser(ctx, "5511999990000").Return(reportTxns(), nil)
	cache.EXPECT().Set(ctx, "5511999990000", "2025-06-15", gomock.Any()).Return(nil)

	summary, err := svc.DailySummary(ctx, "11999990000")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", summary.Date)
	assert.True(t, summary.Today.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.Today.Expense.Equal(decimal.NewFromInt(20)))
	assert.True(t, summary.Today.Balance().Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 1, summary.Today.IncomeCount)
	assert.Equal(t, 1, summary.Today.ExpenseCount)

	assert.True(t, summary.Overall.Expense.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 7, summary.Overall.ExpenseCount)

	require.Len(t, summary.Recent, 5)
	assert.Equal(t, "freelance", summary.Recent[0].Description)
	assert.Equal(t, "marmita", summary.Recent[1].Description)
}

func TestReportService_DailySummary_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cache := newReportService(ctrl)
	ctx := context.Background()
	cached := &models.DailySummary{Date: "2025-06-15"}

	cache.EXPECT().Get(ctx, "5511999990000", "2025-06-15").Return(cached, nil)

	summary, err := svc.DailySummary(ctx, "5511999990000")
	require.NoError(t, err)
	assert.Same(t, cached, summary)
}

func TestReportService_DailySummary_CacheErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, cache := newReportService(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "5511999990000", "2025-06-15").Return(nil, errors.New("redis down"))
	reader.EXPECT().ListByUser(ctx, "5511999990000").Return(nil, nil)
	cache.EXPECT().Set(ctx, "5511999990000", "2025-06-15", gomock.Any()).Return(errors.New("redis down"))

	summary, err := svc.DailySummary(ctx, "5511999990000")
	require.NoError(t, err)
	assert.True(t, summary.Today.Balance().IsZero())
	assert.Empty(t, summary.Recent)
}

func TestReportService_DailySummary_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, cache := newReportService(ctrl)
	ctx := context.Background()

	_, err := svc.DailySummary(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	dbErr := errors.New("db down")
	cache.EXPECT().Get(ctx, "5511999990000", "2025-06-15").Return(nil, nil)
	reader.EXPECT().ListByUser(ctx, "5511999990000").Return(nil, dbErr)

	_, err = svc.DailySummary(ctx, "5511999990000")
	assert.ErrorIs(t, err, dbErr)
}

func TestReportService_DailySummary_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockReportTransactionReader(ctrl)
	svc := NewReportService(reader, nil, time.UTC)
	svc.now = func() time.Time { return reportNow }

	reader.EXPECT().ListByUser(gomock.Any(), "5511999990000").Return(reportTxns(), nil)

	summary, err := svc.DailySummary(context.Background(), "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", summary.Date)
}

func TestReportService_PeriodReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newReportService(ctrl)
	ctx := context.Background()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 23, 59, 59, 999999999, time.UTC)
	txns := []models.Transaction{
		{Type: models.TypeIncome, Value: decimal.NewFromInt(300), Timestamp: to},
		{Type: models.TypeExpense, Value: decimal.RequireFromString("45.50"), Timestamp: from},
	}
	reader.EXPECT().ListByUserInRange(ctx, "5511999990000", from, to).Return(txns, nil)

	report, err := svc.PeriodReport(ctx, "5511999990000", "2025-06-01", "2025-06-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", report.Start)
	assert.Equal(t, "2025-06-10", report.End)
	assert.True(t, report.Totals.Balance().Equal(decimal.RequireFromString("254.50")))
	assert.Equal(t, txns, report.Transactions)
}

func TestReportService_PeriodReport_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newReportService(ctrl)
	ctx := context.Background()

	from := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 23, 59, 59, 999999999, time.UTC)
	reader.EXPECT().ListByUserInRange(ctx, "5511999990000", from, to).Return(nil, nil)

	report, err := svc.PeriodReport(ctx, "5511999990000", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-16", report.Start)
	assert.Equal(t, "2025-06-15", report.End)
	assert.True(t, report.Totals.Balance().IsZero())
}

func TestReportService_PeriodReport_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newReportService(ctrl)
	ctx := context.Background()

	tests := []struct {
		name      string
		phone     string
		start     string
		end       string
		wantErrIs error
	}{
		{"start after end", "5511999990000", "2025-06-10", "2025-06-01", ErrInvalidPeriod},
		{"bad start", "5511999990000", "01/06/2025", "2025-06-10", ErrInvalidDate},
		{"bad end", "5511999990000", "2025-06-01", "amanhã", ErrInvalidDate},
		{"bad phone", "", "2025-06-01", "2025-06-10", ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PeriodReport(ctx, tt.phone, tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErrIs)
		})
	}

	dbErr := errors.New("db down")
	reader.EXPECT().ListByUserInRange(ctx, "5511999990000", gomock.Any(), gomock.Any()).Return(nil, dbErr)
	_, err := svc.PeriodReport(ctx, "5511999990000", "2025-06-01", "2025-06-01")
	assert.ErrorIs(t, err, dbErr)
}
