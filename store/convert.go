package store

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/mkubat/kapsa/currency"
	"gitlab.com/mkubat/kapsa/ledger"
	"gitlab.com/mkubat/kapsa/logger"
)

// ErrConversionInProgress is returned when a conversion is started while
// another one is still in flight. The expense list is not safe to rewrite
// concurrently, so the second call is rejected instead of queued.
var ErrConversionInProgress = errors.New("currency conversion already in progress")

// ConvertCurrency converts all expense amounts from the current settings
// currency to newCurrency.
func (s *Store) ConvertCurrency(ctx context.Context, newCurrency string, isManual bool) error {
	s.mu.Lock()
	from := s.settings.Currency
	s.mu.Unlock()
	return s.ConvertCurrencyFromTo(ctx, from, newCurrency, isManual)
}

// ConvertCurrencyFromTo converts all expense amounts from one currency to
// another.
//
// Same-currency conversions and conversions with no expenses skip the rate
// fetch and only relabel the settings currency. A failed rate fetch aborts
// the whole call: no expense is mutated and the currency label stays
// unchanged, unlike the no-op paths which do relabel.
//
// Each expense is re-derived from its original currency/amount pair when
// present, so repeated conversions never compound rounding error.
func (s *Store) ConvertCurrencyFromTo(ctx context.Context, from, to string, isManual bool) error {
	from = currency.NormalizeCode(from)
	to = currency.NormalizeCode(to)

	s.mu.Lock()
	if s.converting {
		s.mu.Unlock()
		return ErrConversionInProgress
	}
	if from == to || len(s.expenses) == 0 {
		s.relabelCurrencyLocked(ctx, to, isManual)
		s.mu.Unlock()
		return nil
	}
	s.converting = true
	s.mu.Unlock()

	rates, err := s.rates.Latest(ctx, from)
	if err != nil {
		s.mu.Lock()
		s.converting = false
		s.mu.Unlock()
		logger.Log.Error().
			Err(err).
			Str("from", from).
			Str("to", to).
			Msg("Currency conversion aborted: rate fetch failed")
		return fmt.Errorf("failed to fetch rates for %s: %w", from, err)
	}

	s.mu.Lock()
	now := nowUTC()
	for i := range s.expenses {
		e := &s.expenses[i]
		if e.HasOriginalAmount() {
			e.Amount = currency.ConvertAmount(*e.OriginalAmount, e.OriginalCurrency, to, rates)
		} else {
			e.Amount = currency.ConvertAmount(e.Amount, from, to, rates)
		}
		e.UpdatedAt = now
	}
	converted := len(s.expenses)
	s.settings.Currency = to
	s.settings.IsManualCurrency = isManual
	if isManual {
		s.settings.CurrencyMode = ledger.CurrencyModeManual
	}
	s.converting = false
	s.persistLocked(ctx)
	s.mu.Unlock()

	logger.Log.Info().
		Str("from", from).
		Str("to", to).
		Int("expenses", converted).
		Msg("Currency conversion completed")
	return nil
}

// relabelCurrencyLocked applies the no-op conversion outcome: the currency
// label and manual flags change, amounts do not. Callers hold the lock.
func (s *Store) relabelCurrencyLocked(ctx context.Context, to string, isManual bool) {
	s.settings.Currency = to
	s.settings.IsManualCurrency = isManual
	if isManual {
		s.settings.CurrencyMode = ledger.CurrencyModeManual
	}
	s.persistLocked(ctx)
}
