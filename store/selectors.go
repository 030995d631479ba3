package store

import (
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/mkubat/kapsa/ledger"
)

// VisibleShops returns the shops the UI lists for the active language:
// every custom shop, plus the built-ins pinned to the active language.
// Built-ins of other languages are hidden, never deleted.
func (s *Store) VisibleShops() []ledger.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()

	language := s.settings.Language
	visible := make([]ledger.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		if shop.IsCustom || (shop.IsOriginal && shop.Language == language) {
			visible = append(visible, shop)
		}
	}
	return visible
}

// ShopByID looks up a shop. A false result is a valid, displayable state:
// expenses may reference deleted shops.
func (s *Store) ShopByID(id string) (ledger.Shop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, shop := range s.shops {
		if shop.ID == id {
			return shop, true
		}
	}
	return ledger.Shop{}, false
}

// ExpensesInRange returns entries with start <= date < end.
func (s *Store) ExpensesInRange(start, end time.Time) []ledger.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ledger.Expense
	for _, e := range s.expenses {
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

// ExpensesForShop returns entries referencing the given shop.
func (s *Store) ExpensesForShop(shopID string) []ledger.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ledger.Expense
	for _, e := range s.expenses {
		if e.ShopID == shopID {
			out = append(out, e)
		}
	}
	return out
}

// TotalByType sums all entry amounts of the given type, in the settings
// currency.
func (s *Store) TotalByType(entryType ledger.EntryType) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, e := range s.expenses {
		if e.Type == entryType {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalInRange sums entry amounts of the given type with start <= date < end.
func (s *Store) TotalInRange(entryType ledger.EntryType, start, end time.Time) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, e := range s.expenses {
		if e.Type == entryType && !e.Date.Before(start) && e.Date.Before(end) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Balance returns total income minus total expenses.
func (s *Store) Balance() decimal.Decimal {
	return s.TotalByType(ledger.EntryIncome).Sub(s.TotalByType(ledger.EntryExpense))
}
