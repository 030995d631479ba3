package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders an amount with its currency for the given UI language,
// using locale-aware digit grouping and decimal separators. Czech koruna is
// special-cased to the conventional "1 234,50 Kč" suffix form.
func FormatAmount(amount decimal.Decimal, currencyCode, lang string) string {
	if currencyCode == "CZK" {
		return strings.ReplaceAll(amount.StringFixed(2), ".", ",") + " Kč"
	}

	printer := message.NewPrinter(language.Make(lang))
	formatted := printer.Sprint(number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2),
	))
	return CurrencySymbol(currencyCode) + formatted
}
