// Package currency renders monetary values for chat replies and reports.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders amount as Brazilian reais with two decimals, for example
// "R$ 1.234,50" or "-R$ 20,00".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + " " + printer.Sprintf("%.2f", rounded.InexactFloat64())
}
