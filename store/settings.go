package store

import (
	"context"

	"gitlab.com/mkubat/kapsa/currency"
	"gitlab.com/mkubat/kapsa/ledger"
)

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	Currency     *string
	Language     *string
	DarkMode     *ledger.DarkMode
	CurrencyMode *ledger.CurrencyMode
}

// UpdateSettings applies a partial settings update with the reconciliation
// rules tying currency, language and shops together. The branches are
// evaluated in a fixed order against the pre-update settings:
//
//  1. A currency-mode switch to auto-language adopts the currency mapped to
//     the current language. If expenses exist and the currency actually
//     changes, a conversion pass runs and finalizes the settings; the rest
//     of the patch beyond the mode flags is not applied.
//  2. Otherwise a language change in auto-language mode adopts the new
//     language's currency, converting existing expenses when needed, and in
//     all cases backfills the built-in shops for the new language.
//  3. Otherwise a direct currency change is a relabel only and forces manual
//     mode.
//
// The merged settings and any shop insertions persist together.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	s.mu.Lock()

	prev := s.settings
	merged := prev
	if patch.Currency != nil {
		merged.Currency = currency.NormalizeCode(*patch.Currency)
	}
	if patch.Language != nil {
		merged.Language = *patch.Language
	}
	if patch.DarkMode != nil {
		merged.DarkMode = *patch.DarkMode
	}
	if patch.CurrencyMode != nil {
		merged.CurrencyMode = *patch.CurrencyMode
	}

	// Currency mode change.
	if patch.CurrencyMode != nil && *patch.CurrencyMode != prev.CurrencyMode {
		merged.IsManualCurrency = *patch.CurrencyMode == ledger.CurrencyModeManual

		if *patch.CurrencyMode == ledger.CurrencyModeAutoLanguage {
			mapped := ledger.CurrencyForLanguage(prev.Language)
			if prev.Currency != mapped {
				if len(s.expenses) > 0 {
					// The conversion pass owns finalizing the currency;
					// only the mode flags are applied before it runs.
					s.settings.CurrencyMode = merged.CurrencyMode
					s.settings.IsManualCurrency = false
					s.persistLocked(ctx)
					s.mu.Unlock()
					return s.ConvertCurrencyFromTo(ctx, prev.Currency, mapped, false)
				}
				merged.Currency = mapped
			}
		}
	}

	// Language change.
	if patch.Language != nil && *patch.Language != prev.Language {
		newLanguage := *patch.Language

		if merged.CurrencyMode == ledger.CurrencyModeAutoLanguage {
			mapped := ledger.CurrencyForLanguage(newLanguage)
			if prev.Currency != mapped {
				merged.IsManualCurrency = false
				if len(s.expenses) > 0 {
					// Keep the old currency label; the conversion relabels
					// it on success and leaves it untouched on abort.
					merged.Currency = prev.Currency
					s.settings = merged
					s.persistLocked(ctx)
					s.mu.Unlock()

					convErr := s.ConvertCurrencyFromTo(ctx, prev.Currency, mapped, false)
					s.InitializeShopsForLanguage(ctx, newLanguage)
					return convErr
				}
				merged.Currency = mapped
			}
		}

		s.ensureDefaultShopsLocked(newLanguage)
	}

	// Direct currency change: a relabel, never a conversion. Conversions
	// happen only through the branches above or ConvertCurrency.
	if patch.Currency != nil && currency.NormalizeCode(*patch.Currency) != prev.Currency {
		merged.CurrencyMode = ledger.CurrencyModeManual
		merged.IsManualCurrency = true
	}

	s.settings = merged
	s.persistLocked(ctx)
	s.mu.Unlock()
	return nil
}
