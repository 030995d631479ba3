package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"gitlab.com/mkubat/kapsa/currency"
	"gitlab.com/mkubat/kapsa/ledger"
)

func usdTable() currency.Rates {
	return currency.Rates{
		"USD": dec("1"),
		"EUR": dec("0.9"),
		"CZK": dec("23"),
	}
}

func TestConvertCurrencySameCurrencyRelabelsOnly(t *testing.T) {
	ctx := context.Background()
	provider := &stubRates{table: usdTable()}
	s, _ := newTestStore(t, provider)
	addUSDExpense(t, s, "shop-en-groceries", "10")

	require.NoError(t, s.ConvertCurrency(ctx, "USD", true))

	require.Equal(t, 0, provider.callCount(), "no rate fetch for a no-op")
	require.True(t, dec("10").Equal(s.Expenses()[0].Amount))

	settings := s.Settings()
	require.Equal(t, "USD", settings.Currency)
	require.True(t, settings.IsManualCurrency, "manual flag follows the argument")
	require.Equal(t, ledger.CurrencyModeManual, settings.CurrencyMode)
}

func TestConvertCurrencyNoExpensesRelabelsOnly(t *testing.T) {
	ctx := context.Background()
	provider := &stubRates{table: usdTable()}
	s, _ := newTestStore(t, provider)

	require.NoError(t, s.ConvertCurrency(ctx, "EUR", false))

	require.Equal(t, 0, provider.callCount())
	settings := s.Settings()
	require.Equal(t, "EUR", settings.Currency, "the label still changes")
	require.False(t, settings.IsManualCurrency)
	require.Equal(t, ledger.CurrencyModeAutoLanguage, settings.CurrencyMode, "mode untouched when not manual")
}

func TestConvertCurrencyUsesOriginalAmounts(t *testing.T) {
	ctx := context.Background()
	provider := &stubRates{table: usdTable()}
	s, _ := newTestStore(t, provider)

	withOriginal := addUSDExpense(t, s, "shop-en-groceries", "10")
	legacy := s.AddExpense(ctx, ledger.Expense{
		ShopID: "shop-en-cafe",
		Amount: dec("4"),
		Type:   ledger.EntryExpense,
		// No original pair: converted from the current amount.
	})

	require.NoError(t, s.ConvertCurrency(ctx, "CZK", true))

	require.Equal(t, 1, provider.callCount())
	require.Equal(t, "USD", provider.lastBase, "rates are fetched anchored at the source currency")

	amounts := map[string]string{}
	for _, e := range s.Expenses() {
		amounts[e.ID] = e.Amount.String()
	}
	require.Equal(t, "230", amounts[withOriginal.ID])
	require.Equal(t, "92", amounts[legacy.ID])

	settings := s.Settings()
	require.Equal(t, "CZK", settings.Currency)
	require.True(t, settings.IsManualCurrency)
	require.Equal(t, ledger.CurrencyModeManual, settings.CurrencyMode)

	// Original pair survives for future conversions.
	stored := s.Expenses()
	for _, e := range stored {
		if e.ID == withOriginal.ID {
			require.Equal(t, "USD", e.OriginalCurrency)
			require.True(t, dec("10").Equal(*e.OriginalAmount))
		}
	}
}

func TestConvertCurrencyRoundTripStability(t *testing.T) {
	// Repeated conversions ending back at the original currency must restore
	// the original amounts exactly, with no accumulated rounding drift.
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		provider := &stubRates{}
		s, _ := newTestStore(t, provider)

		count := rapid.IntRange(1, 5).Draw(rt, "count")
		originals := make([]string, count)
		for i := range originals {
			cents := rapid.Int64Range(1, 1_000_000).Draw(rt, "cents")
			amount := decimal.New(cents, -2)
			originals[i] = amount.String()
			s.AddExpense(ctx, ledger.Expense{
				ShopID:           "shop-en-groceries",
				Amount:           amount,
				Type:             ledger.EntryExpense,
				OriginalCurrency: "USD",
				OriginalAmount:   &amount,
			})
		}

		hops := rapid.SliceOfN(rapid.SampledFrom([]string{"EUR", "CZK"}), 1, 4).Draw(rt, "hops")
		for _, to := range hops {
			provider.mu.Lock()
			provider.table = currency.Rates{
				"USD": dec("1"),
				"EUR": decimal.NewFromFloat(rapid.Float64Range(0.1, 10).Draw(rt, "eur")),
				"CZK": decimal.NewFromFloat(rapid.Float64Range(0.1, 100).Draw(rt, "czk")),
			}
			provider.mu.Unlock()
			require.NoError(rt, s.ConvertCurrency(ctx, to, true))
		}
		require.NoError(rt, s.ConvertCurrency(ctx, "USD", true))

		got := s.Expenses()
		require.Len(rt, got, count)
		for i, e := range got {
			require.Equal(rt, originals[i], e.Amount.String())
		}
	})
}

func TestConvertCurrencyFetchFailureAborts(t *testing.T) {
	ctx := context.Background()
	provider := &stubRates{err: errors.New("rates unavailable")}
	s, _ := newTestStore(t, provider)
	addUSDExpense(t, s, "shop-en-groceries", "10")

	before := s.Settings()
	err := s.ConvertCurrency(ctx, "CZK", true)
	require.Error(t, err)

	// Full abort: amounts untouched, label untouched, flag cleared.
	require.True(t, dec("10").Equal(s.Expenses()[0].Amount))
	require.Equal(t, before, s.Settings())
	require.False(t, s.IsConverting())
}

func TestConvertCurrencyRejectsConcurrentConversion(t *testing.T) {
	ctx := context.Background()
	block := make(chan struct{})
	provider := &stubRates{table: usdTable(), block: block}
	s, _ := newTestStore(t, provider)
	addUSDExpense(t, s, "shop-en-groceries", "10")

	done := make(chan error, 1)
	go func() {
		done <- s.ConvertCurrency(ctx, "CZK", true)
	}()

	require.Eventually(t, s.IsConverting, time.Second, time.Millisecond,
		"conversion flag is observable while the fetch is in flight")

	err := s.ConvertCurrencyFromTo(ctx, "USD", "EUR", true)
	require.ErrorIs(t, err, ErrConversionInProgress)

	close(block)
	require.NoError(t, <-done)
	require.False(t, s.IsConverting())
	require.Equal(t, "CZK", s.Settings().Currency)
	require.True(t, dec("230").Equal(s.Expenses()[0].Amount))
}
