package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Ensure Memory implements Gateway
var _ Gateway = (*Memory)(nil)

// Memory is an in-memory Gateway for tests and previews. State is stored as
// an encoded blob so loads never alias the caller's slices.
type Memory struct {
	mu   sync.Mutex
	blob []byte

	// SaveErr, when set, is returned by Save. Lets tests exercise the
	// fire-and-forget persistence contract.
	SaveErr error

	saves int
}

// Load decodes the last saved state, or returns (nil, nil) if none.
func (m *Memory) Load(_ context.Context) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return nil, nil
	}
	var state State
	if err := json.Unmarshal(m.blob, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &state, nil
}

// Save encodes and keeps the given state.
func (m *Memory) Save(_ context.Context, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	m.blob = blob
	m.saves++
	return nil
}

// Saves reports how many successful saves happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
