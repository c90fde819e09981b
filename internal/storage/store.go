package storage

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"secret-wallet/internal/logger"
	"secret-wallet/internal/models"
)

// StateKey is the preferences key the application state is stored under.
const StateKey = "app"

// ErrNoState is returned by Load when nothing has been persisted yet.
var ErrNoState = errors.New("no persisted state")

// Store persists the application state in the host preferences.
type Store struct {
	prefs  fyne.Preferences
	key    string
	logger logger.Logger
}

func NewStore(prefs fyne.Preferences, log logger.Logger) *Store {
	return &Store{
		prefs:  prefs,
		key:    StateKey,
		logger: log,
	}
}

// Load reads the persisted state.
func (s *Store) Load() (models.State, error) {
	raw := s.prefs.String(s.key)
	if raw == "" {
		return models.State{}, ErrNoState
	}
	return Decode([]byte(raw))
}

// LoadOrDefault reads the persisted state and falls back to the default state
// when it is absent or unreadable.
func (s *Store) LoadOrDefault() models.State {
	state, err := s.Load()
	if err != nil {
		s.logger.Debug("StateStore", "using default state", map[string]interface{}{
			"key":    s.key,
			"reason": err.Error(),
		})
		return models.DefaultState()
	}

	s.logger.Debug("StateStore", "state restored", map[string]interface{}{
		"account":  state.Account,
		"accounts": len(state.Accounts),
		"mode":     state.Mode.String(),
	})
	return state
}

// Save writes state to the preferences.
func (s *Store) Save(state models.State) error {
	data, err := Encode(state)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.prefs.SetString(s.key, string(data))

	s.logger.Debug("StateStore", "state saved", map[string]interface{}{
		"key":   s.key,
		"bytes": len(data),
	})
	return nil
}

