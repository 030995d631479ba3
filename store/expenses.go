package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/mkubat/kapsa/ledger"
)

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// AddExpense assigns an id and timestamps and appends the entry. The store
// trusts the caller on amount validity and shop presence; input validation
// lives at the UI boundary.
func (s *Store) AddExpense(ctx context.Context, expense ledger.Expense) ledger.Expense {
	now := nowUTC()
	expense.ID = uuid.NewString()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, expense)
	s.persistLocked(ctx)
	return expense
}

// UpdateExpense replaces the entry with the same id and refreshes its
// updatedAt. Other entities are untouched.
func (s *Store) UpdateExpense(ctx context.Context, expense ledger.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID != expense.ID {
			continue
		}
		expense.CreatedAt = s.expenses[i].CreatedAt
		expense.UpdatedAt = nowUTC()
		s.expenses[i] = expense
		s.persistLocked(ctx)
		return nil
	}
	return ErrNotFound
}

// DeleteExpense removes the entry by id. No cascading effects.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
		s.persistLocked(ctx)
		return nil
	}
	return ErrNotFound
}
