package models

import (
	"fmt"
	"sync"
)

// StateRepository owns the live application state. Handlers run on the UI
// goroutine; the lock lets shutdown snapshot the state from elsewhere.
type StateRepository struct {
	mu    sync.RWMutex
	state State
}

// NewStateRepository creates a repository seeded with initial, normalised.
func NewStateRepository(initial State) *StateRepository {
	return &StateRepository{state: initial.Clone().Normalize()}
}

// Snapshot returns a copy of the current state
func (r *StateRepository) Snapshot() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

// SelectAccount makes index the selected account.
func (r *StateRepository) SelectAccount(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.state.Accounts) {
		return fmt.Errorf("select account %d of %d: %w", index, len(r.state.Accounts), ErrAccountOutOfRange)
	}
	r.state.Account = index
	return nil
}

// SetMode switches the UI mode and reports whether it changed.
func (r *StateRepository) SetMode(mode UIMode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Mode == mode {
		return false
	}
	r.state.Mode = mode
	return true
}

