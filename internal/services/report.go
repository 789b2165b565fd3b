package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-finance-assistant/internal/ledger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/phone"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

var (
	// ErrInvalidPeriod is returned when a report starts after it ends.
	ErrInvalidPeriod = errors.New("start date is after end date")
	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

const (
	recentTransactions = 5
	defaultReportDays  = 30
)

// ReportTransactionReader reads the transactions reports are built from.
type ReportTransactionReader interface {
	ListByUser(ctx context.Context, phone string) ([]models.Transaction, error)                           // Newest first
	ListByUserInRange(ctx context.Context, phone string, from, to time.Time) ([]models.Transaction, error) // Inclusive bounds, newest first
}

// SummaryCache caches daily summaries.
type SummaryCache interface {
	Get(ctx context.Context, phone, day string) (*models.DailySummary, error) // Returns nil on a cache miss
	Set(ctx context.Context, phone, day string, summary *models.DailySummary) error
}

// ReportService builds the dashboard summary and period reports.
type ReportService struct {
	txnReader ReportTransactionReader
	cache     SummaryCache
	location  *time.Location
	now       func() time.Time
}

// NewReportService creates a new ReportService. cache may be nil.
func NewReportService(txnReader ReportTransactionReader, cache SummaryCache, location *time.Location) *ReportService {
	if location == nil {
		location = time.Local
	}
	return &ReportService{
		txnReader: txnReader,
		cache:     cache,
		location:  location,
		now:       time.Now,
	}
}

// DailySummary returns today's totals, the overall totals and the latest transactions of a user.
func (s *ReportService) DailySummary(ctx context.Context, rawPhone string) (*models.DailySummary, error) {
	userPhone := phone.Normalize(rawPhone)
	if userPhone == "" {
		return nil, ErrInvalidPhone
	}

	now := s.now()
	day := now.In(s.location).Format(time.DateOnly)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userPhone, day)
		if err != nil {
			logger.Log.Warnw("failed to read cached summary", "phone", userPhone, "day", day, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	txns, err := s.txnReader.ListByUser(ctx, userPhone)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "phone", userPhone, "error", err)
		return nil, err
	}

	start, end := ledger.DayBounds(now, s.location)
	summary := &models.DailySummary{
		Date:    day,
		Today:   ledger.Sum(ledger.Between(txns, start, end)),
		Overall: ledger.Sum(txns),
		Recent:  ledger.Recent(txns, recentTransactions),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userPhone, day, summary); err != nil {
			logger.Log.Errorw("failed to cache summary", "phone", userPhone, "day", day, "error", err)
		}
	}

	return summary, nil
}

// PeriodReport lists the transactions of a user from the start of startDate to the
// end of endDate, both YYYY-MM-DD in the service time zone. An empty endDate means
// today and an empty startDate means 30 days before endDate.
func (s *ReportService) PeriodReport(ctx context.Context, rawPhone, startDate, endDate string) (*models.PeriodReport, error) {
	userPhone := phone.Normalize(rawPhone)
	if userPhone == "" {
		return nil, ErrInvalidPhone
	}

	end, err := s.parseDate(endDate, s.now())
	if err != nil {
		return nil, err
	}
	start, err := s.parseDate(startDate, end.AddDate(0, 0, -defaultReportDays))
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrInvalidPeriod
	}

	from, _ := ledger.DayBounds(start, s.location)
	_, next := ledger.DayBounds(end, s.location)
	to := next.Add(-time.Nanosecond)

	txns, err := s.txnReader.ListByUserInRange(ctx, userPhone, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list transactions in range", "phone", userPhone, "from", from, "to", to, "error", err)
		return nil, err
	}

	return &models.PeriodReport{
		Start:        from.Format(time.DateOnly),
		End:          end.In(s.location).Format(time.DateOnly),
		Totals:       ledger.Sum(txns),
		Transactions: txns,
	}, nil
}

func (s *ReportService) parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback.In(s.location), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, s.location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
