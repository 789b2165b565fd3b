package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

// SummaryGetter returns the dashboard of a user.
type SummaryGetter interface {
	DailySummary(ctx context.Context, phone string) (*models.DailySummary, error)
}

// PeriodReporter builds reports over a date range.
type PeriodReporter interface {
	PeriodReport(ctx context.Context, phone, startDate, endDate string) (*models.PeriodReport, error)
}

// ReportErrorResponse represents an error response for report endpoints
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	// Error message
	// default: Invalid phone number
	Error string `json:"error"`
}

// NewSummaryHandler returns an HTTP handler with the daily dashboard of a user.
// @Summary Daily summary
// @Description Today's income, expenses and balance, overall totals and the five most recent transactions
// @Tags reports
// @Produce json
// @Param phone path string true "User phone"
// @Success 200 {object} models.DailySummary "Summary"
// @Failure 400 {object} handlers.ReportErrorResponse "Invalid phone number"
// @Failure 401 {object} handlers.ReportErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /users/{phone}/summary [get]
// @Security ApiKeyAuth
func NewSummaryHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := chi.URLParam(r, "phone")

		summary, err := svc.DailySummary(r.Context(), phone)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPhone) {
				writeJSON(w, http.StatusBadRequest, ReportErrorResponse{Error: "Invalid phone number"})
				return
			}
			logger.Log.Errorw("failed to build daily summary", "phone", phone, "error", err)
			writeJSON(w, http.StatusInternalServerError, ReportErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewReportHandler returns an HTTP handler with the transactions of a user over a period.
// @Summary Period report
// @Description Transactions between start and end (inclusive, YYYY-MM-DD), newest first, with totals. Defaults to the last 30 days.
// @Tags reports
// @Produce json
// @Param phone path string true "User phone"
// @Param start query string false "First day, YYYY-MM-DD"
// @Param end query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} models.PeriodReport "Report"
// @Failure 400 {object} handlers.ReportErrorResponse "Invalid phone, date or period"
// @Failure 401 {object} handlers.ReportErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /users/{phone}/report [get]
// @Security ApiKeyAuth
func NewReportHandler(svc PeriodReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := chi.URLParam(r, "phone")
		query := r.URL.Query()

		report, err := svc.PeriodReport(r.Context(), phone, query.Get("start"), query.Get("end"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPhone):
				writeJSON(w, http.StatusBadRequest, ReportErrorResponse{Error: "Invalid phone number"})
			case errors.Is(err, services.ErrInvalidDate):
				writeJSON(w, http.StatusBadRequest, ReportErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			case errors.Is(err, services.ErrInvalidPeriod):
				writeJSON(w, http.StatusBadRequest, ReportErrorResponse{Error: "Start date is after end date"})
			default:
				logger.Log.Errorw("failed to build period report", "phone", phone, "error", err)
				writeJSON(w, http.StatusInternalServerError, ReportErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
