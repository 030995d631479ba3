// Package currency provides exchange-rate lookup and pure amount conversion.
package currency

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Rates is an exchange-rate table anchored at some base currency. Values are
// units of the keyed currency per one unit of the base.
type Rates map[string]decimal.Decimal

// Provider returns the latest rate table anchored at the given base currency.
type Provider interface {
	Latest(ctx context.Context, base string) (Rates, error)
}

var one = decimal.NewFromInt(1)

// NormalizeCode canonicalizes a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ConvertAmount converts an amount between two currencies using the given
// rate table. Same-currency conversion returns the amount unchanged, with no
// rounding round-trip. Otherwise the amount is taken through the table's base
// (amount / rates[from] * rates[to]); when the table is anchored at the source
// currency this reduces to a single multiplication. Missing or zero entries
// default to 1. The result is rounded half away from zero to 2 decimals.
func ConvertAmount(amount decimal.Decimal, from, to string, rates Rates) decimal.Decimal {
	if from == to {
		return amount
	}

	fromRate, ok := rates[from]
	if !ok || fromRate.IsZero() {
		fromRate = one
	}
	toRate, ok := rates[to]
	if !ok || toRate.IsZero() {
		toRate = one
	}

	return amount.Div(fromRate).Mul(toRate).Round(2)
}
