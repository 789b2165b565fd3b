// Package processor interprets chat messages such as "gastei 20 com marmita" or
// "saldo do dia" and turns them into new transactions or daily totals.
package processor

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-assistant/internal/currency"
	"github.com/sbilibin2017/gw-finance-assistant/internal/ledger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// HelpText is the reply to anything the processor does not understand.
// It is also the first message of every chat.
const HelpText = "🤖 Olá! Sou seu assistente financeiro!\n" +
	"Envie mensagens como:\n" +
	"💸 \"gastei 20 com marmita\"\n" +
	"💰 \"ganhei 50 do freelance\"\n" +
	"📊 \"saldo do dia\", \"lucro do dia\""

// CreateFunc stores a transaction recognised in a message.
type CreateFunc func(txn models.NewTransaction) error

// Processor holds no per-message state and is safe for concurrent use.
type Processor struct {
	now      func() time.Time
	location *time.Location
	format   func(decimal.Decimal) string
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(p *Processor) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithFormatter sets how monetary values are rendered in replies.
func WithFormatter(format func(decimal.Decimal) string) Option {
	return func(p *Processor) {
		if format != nil {
			p.format = format
		}
	}
}

// New returns a Processor using the local time zone and the BRL formatter unless overridden.
func New(opts ...Option) *Processor {
	p := &Processor{
		now:      time.Now,
		location: time.Local,
		format:   currency.FormatCurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process answers one message. Recordings call onCreate exactly once and confirm
// the transaction; queries aggregate txns over the current day; anything else
// gets HelpText. The only error returned is the one from onCreate, unchanged.
func (p *Processor) Process(text string, txns []models.Transaction, onCreate CreateFunc) (string, error) {
	words := split(text)

	if txn, ok := p.parseRecording(words); ok {
		if onCreate != nil {
			if err := onCreate(txn); err != nil {
				return "", err
			}
		}
		return p.confirm(txn), nil
	}

	for _, r := range rules {
		if r.action == actionQuery && containsKeyword(r, words) {
			return p.answer(r.metric, txns), nil
		}
	}

	return HelpText, nil
}

// parseRecording picks the earliest verb that has an amount after it. When the
// same word is a verb of more than one rule, the rule listed first wins.
// The description is everything else in the message.
func (p *Processor) parseRecording(words []word) (models.NewTransaction, bool) {
	for i, w := range words {
		for _, r := range rules {
			if r.action != actionRecord || !r.has(w.key) {
				continue
			}
			value, rest, ok := extractAmount(joinRaw(words[i+1:]))
			if !ok {
				continue
			}
			return models.NewTransaction{
				Type:        r.txnType,
				Value:       value,
				Description: describe(joinRaw(words[:i])+" "+rest, r.fallback),
				Timestamp:   p.now(),
			}, true
		}
	}
	return models.NewTransaction{}, false
}

func containsKeyword(r rule, words []word) bool {
	for _, w := range words {
		if r.has(w.key) {
			return true
		}
	}
	return false
}

func (p *Processor) confirm(txn models.NewTransaction) string {
	header := "💸 Gasto registrado!"
	if txn.Type == models.TypeIncome {
		header = "💰 Ganho registrado!"
	}
	return fmt.Sprintf("%s\nValor: %s\nDescrição: %s", header, p.format(txn.Value), txn.Description)
}

// answer aggregates the transactions of the current local day.
// The only period supported is today, so "hoje" and "dia" need no handling of their own.
func (p *Processor) answer(m metric, txns []models.Transaction) string {
	start, end := ledger.DayBounds(p.now(), p.location)
	totals := ledger.Sum(ledger.Between(txns, start, end))

	switch m {
	case metricProfit:
		return "💰 Lucro do dia: " + p.format(totals.Income)
	case metricExpense:
		return "💸 Gastos do dia: " + p.format(totals.Expense)
	default:
		return fmt.Sprintf("📊 Saldo do dia: %s\n💰 Ganhos: %s\n💸 Gastos: %s",
			p.format(totals.Balance()), p.format(totals.Income), p.format(totals.Expense))
	}
}
