package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"secret-wallet/internal/models"
)

// persistedState is the on-disk shape of models.State. The dialog mode is kept
// as the adding_snip20 flag so older blobs stay readable.
type persistedState struct {
	Account      int      `yaml:"account"`
	Accounts     []string `yaml:"accounts"`
	AddingSnip20 bool     `yaml:"adding_snip20"`
}

func toPersisted(s models.State) persistedState {
	return persistedState{
		Account:      s.Account,
		Accounts:     s.Accounts,
		AddingSnip20: s.DialogOpen(),
	}
}

func (p persistedState) state() models.State {
	mode := models.ModeBrowsing
	if p.AddingSnip20 {
		mode = models.ModeAddingSnip20
	}
	return models.State{
		Account:  p.Account,
		Accounts: p.Accounts,
		Mode:     mode,
	}
}

// Encode serialises state into the persisted blob format.
func Encode(s models.State) ([]byte, error) {
	data, err := yaml.Marshal(toPersisted(s))
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a persisted blob. Fields missing from the blob keep their
// default values and the result is normalised.
func Decode(data []byte) (models.State, error) {
	p := toPersisted(models.DefaultState())
	if err := yaml.Unmarshal(data, &p); err != nil {
		return models.State{}, fmt.Errorf("decode state: %w", err)
	}
	return p.state().Normalize(), nil
}
