package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-finance-assistant/internal/currency"
	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
	"github.com/sbilibin2017/gw-finance-assistant/internal/phone"
	"github.com/sbilibin2017/gw-finance-assistant/internal/processor"
	"github.com/sbilibin2017/gw-finance-assistant/internal/repositories"
	"github.com/sbilibin2017/gw-finance-assistant/internal/services"
)

// Chat commands handled by the simulator itself.
const (
	cmdQuit    = "/sair"
	cmdSummary = "/resumo"
	cmdReport  = "/relatorio"
)

type sessionConfig struct {
	phone    string
	delay    time.Duration
	location *time.Location
}

type session struct {
	phone    string
	delay    time.Duration
	location *time.Location
	in       *bufio.Scanner
	out      io.Writer
	store    *repositories.TransactionMemoryRepository
	proc     *processor.Processor
	reports  *services.ReportService
}

func newSession(cfg sessionConfig, in io.Reader, out io.Writer) *session {
	store := repositories.NewTransactionMemoryRepository()
	return &session{
		phone:    phone.Normalize(cfg.phone),
		delay:    cfg.delay,
		location: cfg.location,
		in:       bufio.NewScanner(in),
		out:      out,
		store:    store,
		proc:     processor.New(processor.WithLocation(cfg.location)),
		reports:  services.NewReportService(store, nil, cfg.location),
	}
}

// run prints the greeting and answers every line until EOF, /sair or ctx is done.
func (s *session) run(ctx context.Context) error {
	if s.phone == "" {
		return services.ErrInvalidPhone
	}

	s.say(processor.HelpText)

	for s.in.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, cmdQuit) {
			return nil
		}

		reply, err := s.answer(ctx, line)
		if err != nil {
			return err
		}

		if !s.wait(ctx) {
			return nil
		}
		s.say(reply)
	}

	return s.in.Err()
}

func (s *session) answer(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case cmdSummary:
		return s.summary(ctx)
	case cmdReport:
		var start, end string
		if len(fields) > 1 {
			start = fields[1]
		}
		if len(fields) > 2 {
			end = fields[2]
		}
		return s.report(ctx, start, end)
	}

	txns, err := s.store.ListByUser(ctx, s.phone)
	if err != nil {
		return "", err
	}

	return s.proc.Process(line, txns, func(txn models.NewTransaction) error {
		stored, err := s.store.Save(ctx, s.phone, txn)
		if err != nil {
			return err
		}
		logger.Log.Debugw("transaction recorded", "id", stored.ID, "type", stored.Type, "value", stored.Value)
		return nil
	})
}

func (s *session) summary(ctx context.Context) (string, error) {
	summary, err := s.reports.DailySummary(ctx, s.phone)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Resumo de %s\n", summary.Date)
	fmt.Fprintf(&b, "💰 Ganhos: %s (%d)\n", currency.FormatCurrency(summary.Today.Income), summary.Today.IncomeCount)
	fmt.Fprintf(&b, "💸 Gastos: %s (%d)\n", currency.FormatCurrency(summary.Today.Expense), summary.Today.ExpenseCount)
	fmt.Fprintf(&b, "📊 Saldo: %s", currency.FormatCurrency(summary.Today.Balance()))
	if len(summary.Recent) > 0 {
		b.WriteString("\n\nÚltimas transações:")
		s.writeTransactions(&b, summary.Recent)
	}
	return b.String(), nil
}

func (s *session) report(ctx context.Context, start, end string) (string, error) {
	report, err := s.reports.PeriodReport(ctx, s.phone, start, end)
	if errors.Is(err, services.ErrInvalidDate) || errors.Is(err, services.ErrInvalidPeriod) {
		return "⚠️ " + err.Error(), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ Relatório de %s a %s\n", report.Start, report.End)
	fmt.Fprintf(&b, "💰 Ganhos: %s\n", currency.FormatCurrency(report.Totals.Income))
	fmt.Fprintf(&b, "💸 Gastos: %s\n", currency.FormatCurrency(report.Totals.Expense))
	fmt.Fprintf(&b, "📊 Saldo: %s", currency.FormatCurrency(report.Totals.Balance()))
	if len(report.Transactions) == 0 {
		b.WriteString("\n\nNenhuma transação no período.")
		return b.String(), nil
	}
	b.WriteString("\n")
	s.writeTransactions(&b, report.Transactions)
	return b.String(), nil
}

func (s *session) writeTransactions(b *strings.Builder, txns []models.Transaction) {
	for _, txn := range txns {
		icon := "💸"
		if txn.Type == models.TypeIncome {
			icon = "💰"
		}
		fmt.Fprintf(b, "\n%s %s %s %s",
			icon,
			txn.Timestamp.In(s.location).Format("02/01 15:04"),
			currency.FormatCurrency(txn.Value),
			txn.Description,
		)
	}
}

// wait pauses for the reply delay and reports false if ctx ended first.
func (s *session) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (s *session) say(text string) {
	fmt.Fprintf(s.out, "%s\n\n", text)
}
