// Package reports computes the dashboard figures from the ledger collections.
//
// Every function is pure: it takes the records (and, where the current month
// matters, a reference time) and returns a result value. Nothing is cached.
package reports

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySuffix follows every formatted amount.
const CurrencySuffix = "XAF"

var printer = message.NewPrinter(language.French)

// FormatCurrency renders d with French digit grouping, up to three decimals,
// followed by the currency suffix: "80 000 XAF".
func FormatCurrency(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v %s", number.Decimal(f, number.MaxFractionDigits(3)), CurrencySuffix)
}

func percent(d decimal.Decimal, rate int64) decimal.Decimal {
	return d.Mul(decimal.New(rate, -2))
}
