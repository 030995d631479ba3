// Package storage persists the application state as a single serialized blob.
package storage

import (
	"context"

	"gitlab.com/mkubat/kapsa/ledger"
)

// State is the full persisted application state.
type State struct {
	Expenses []ledger.Expense `json:"expenses"`
	Shops    []ledger.Shop    `json:"shops"`
	Settings ledger.Settings  `json:"settings"`
}

// Gateway loads and saves the application state blob. Load returns (nil, nil)
// when no state has been saved yet (first run). Save replaces the whole blob
// atomically.
type Gateway interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}
