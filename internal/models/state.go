package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrAccountOutOfRange is returned when an account index does not address an
// entry of the account list.
var ErrAccountOutOfRange = errors.New("account index out of range")

// UIMode is the single modal state of the wallet shell.
type UIMode int

const (
	// ModeBrowsing is the resting mode: no dialog is shown.
	ModeBrowsing UIMode = iota
	// ModeAddingSnip20 shows the Add Snip20 dialog.
	ModeAddingSnip20
)

func (m UIMode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeAddingSnip20:
		return "adding_snip20"
	default:
		return fmt.Sprintf("UIMode(%d)", int(m))
	}
}

// DefaultAccounts are the account names a fresh install starts with.
func DefaultAccounts() []string {
	return []string{"Account1", "Account2", "Account3"}
}

// State is the whole application state. Account always indexes Accounts.
type State struct {
	Account  int
	Accounts []string
	Mode     UIMode
}

// DefaultState returns the state used when nothing was persisted.
func DefaultState() State {
	return State{
		Account:  0,
		Accounts: DefaultAccounts(),
		Mode:     ModeBrowsing,
	}
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	s.Accounts = slices.Clone(s.Accounts)
	return s
}

// SelectedAccount returns the display name of the selected account.
func (s State) SelectedAccount() string {
	if s.Account < 0 || s.Account >= len(s.Accounts) {
		return ""
	}
	return s.Accounts[s.Account]
}

// DialogOpen reports whether the Add Snip20 dialog is showing.
func (s State) DialogOpen() bool {
	return s.Mode == ModeAddingSnip20
}

// Normalize restores the account invariant on state that came from outside
// the process: an empty account list gets the defaults and a stray index
// falls back to the first account.
func (s State) Normalize() State {
	if len(s.Accounts) == 0 {
		s.Accounts = DefaultAccounts()
		s.Account = 0
	}
	if s.Account < 0 || s.Account >= len(s.Accounts) {
		s.Account = 0
	}
	if s.Mode != ModeAddingSnip20 {
		s.Mode = ModeBrowsing
	}
	return s
}

// Equal reports whether two states are identical.
func (s State) Equal(other State) bool {
	return s.Account == other.Account &&
		s.Mode == other.Mode &&
		slices.Equal(s.Accounts, other.Accounts)
}
