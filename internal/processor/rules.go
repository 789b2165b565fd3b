package processor

import "github.com/sbilibin2017/gw-finance-assistant/internal/models"

type action int

const (
	actionRecord action = iota
	actionQuery
)

type metric int

const (
	metricBalance metric = iota
	metricProfit
	metricExpense
)

// rule maps a keyword set to what the processor does when one of the keywords
// appears as a word of the message. Keywords are stored folded (lowercase, no diacritics).
type rule struct {
	name     string
	action   action
	keywords []string

	// Recording rules.
	txnType  models.TransactionType
	fallback string

	// Query rules.
	metric metric
}

func (r rule) has(key string) bool {
	for _, kw := range r.keywords {
		if kw == key {
			return true
		}
	}
	return false
}

// Recording rules are matched by the earliest verb in the message and take
// precedence over queries. Query rules are evaluated top to bottom; the first
// rule that applies wins. Anything that falls through gets the help text.
var rules = []rule{
	{
		name:     "expense",
		action:   actionRecord,
		keywords: []string{"gastei", "paguei", "comprei"},
		txnType:  models.TypeExpense,
		fallback: "Gasto",
	},
	{
		name:     "income",
		action:   actionRecord,
		keywords: []string{"ganhei", "recebi", "lucrei"},
		txnType:  models.TypeIncome,
		fallback: "Ganho",
	},
	{
		name:     "balance",
		action:   actionQuery,
		keywords: []string{"saldo", "saldos"},
		metric:   metricBalance,
	},
	{
		name:     "profit",
		action:   actionQuery,
		keywords: []string{"lucro", "lucros", "ganhos"},
		metric:   metricProfit,
	},
	{
		name:     "expenses",
		action:   actionQuery,
		keywords: []string{"gasto", "gastos", "despesa", "despesas"},
		metric:   metricExpense,
	},
}

// Words dropped from the edges of a recorded description.
var (
	currencyWords = map[string]struct{}{
		"r": {}, "rs": {}, "reais": {}, "real": {},
	}
	connectives = map[string]struct{}{
		"com": {}, "de": {}, "do": {}, "da": {}, "dos": {}, "das": {},
		"no": {}, "na": {}, "nos": {}, "nas": {}, "em": {},
		"pra": {}, "para": {}, "pro": {}, "por": {},
		"o": {}, "a": {}, "os": {}, "as": {}, "e": {}, "um": {}, "uma": {},
	}
)
