// Package store owns all mutable application state: expenses, shops and
// settings, plus the currency/language reconciliation logic that ties them
// together. All mutation goes through Store methods; the UI layer only reads
// through the selectors.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gitlab.com/mkubat/kapsa/catalog"
	"gitlab.com/mkubat/kapsa/currency"
	"gitlab.com/mkubat/kapsa/ledger"
	"gitlab.com/mkubat/kapsa/logger"
	"gitlab.com/mkubat/kapsa/storage"
)

// ErrNotFound is returned when a mutation references an unknown entity.
var ErrNotFound = errors.New("entity not found")

// Store is the central application state container. Mutations persist the
// full state through the storage gateway; persistence failures are logged,
// not surfaced, so a failing disk never blocks the UI.
type Store struct {
	mu       sync.Mutex
	gateway  storage.Gateway
	rates    currency.Provider
	expenses []ledger.Expense
	shops    []ledger.Shop
	settings ledger.Settings

	// converting is the externally observable loading state while a
	// conversion pass is fetching rates and rewriting amounts.
	converting bool
}

// New loads persisted state (or first-run defaults) and backfills any
// built-in shops for the active language that a newer catalog added.
func New(ctx context.Context, gateway storage.Gateway, rates currency.Provider) (*Store, error) {
	if gateway == nil {
		return nil, errors.New("storage gateway is required")
	}
	if rates == nil {
		return nil, errors.New("rates provider is required")
	}

	s := &Store{
		gateway: gateway,
		rates:   rates,
	}

	state, err := gateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state != nil {
		s.expenses = state.Expenses
		s.shops = state.Shops
		s.settings = state.Settings
	} else {
		s.settings = ledger.DefaultSettings()
	}
	if s.settings.Language == "" {
		s.settings.Language = ledger.DefaultSettings().Language
	}
	if s.settings.Currency == "" {
		s.settings.Currency = ledger.DefaultCurrency
	}

	s.mu.Lock()
	s.ensureDefaultShopsLocked(s.settings.Language)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return s, nil
}

// Expenses returns a copy of all expenses.
func (s *Store) Expenses() []ledger.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Shops returns a copy of all shops, including built-ins hidden by the
// active language. Use VisibleShops for the user-facing list.
func (s *Store) Shops() []ledger.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.Shop, len(s.shops))
	copy(out, s.shops)
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() ledger.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// IsConverting reports whether a currency conversion pass is in flight.
func (s *Store) IsConverting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.converting
}

// persistLocked writes the full state through the gateway. Callers hold the
// lock. Failures are logged only; mutations are fire-and-forget with respect
// to persistence.
func (s *Store) persistLocked(ctx context.Context) {
	state := &storage.State{
		Expenses: make([]ledger.Expense, len(s.expenses)),
		Shops:    make([]ledger.Shop, len(s.shops)),
		Settings: s.settings,
	}
	copy(state.Expenses, s.expenses)
	copy(state.Shops, s.shops)

	if err := s.gateway.Save(ctx, state); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to persist state")
	}
}

// ensureDefaultShopsLocked inserts any built-in shop for the language whose
// name is not yet present among that language's originals. Never removes or
// duplicates; returns whether anything was inserted. Callers hold the lock.
func (s *Store) ensureDefaultShopsLocked(language string) bool {
	existing := make(map[string]struct{})
	for _, shop := range s.shops {
		if shop.Language == language && shop.IsOriginal {
			existing[shop.Name] = struct{}{}
		}
	}

	inserted := false
	now := nowUTC()
	for _, shop := range catalog.DefaultShopsForLanguage(language) {
		if _, ok := existing[shop.Name]; ok {
			continue
		}
		shop.CreatedAt = now
		shop.UpdatedAt = now
		s.shops = append(s.shops, shop)
		inserted = true
	}
	return inserted
}

// InitializeShopsForLanguage idempotently backfills the built-in shops for a
// language. Used at startup and after language switches.
func (s *Store) InitializeShopsForLanguage(ctx context.Context, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ensureDefaultShopsLocked(language) {
		s.persistLocked(ctx)
	}
}
