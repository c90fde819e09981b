package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envCfgPath, filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "network.secret.wallet", cfg.App.ID)
	assert.Equal(t, "Secret Wallet", cfg.App.Title)
	assert.Equal(t, float32(1024), cfg.Window.Width)
	assert.Equal(t, float32(640), cfg.Window.Height)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Debug)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
debug = true

[window]
width = 800
height = 600

[ui]
theme = "Light"

[log]
level = "debug"
`)
	t.Setenv(envCfgPath, path)
	t.Setenv("SECRET_WALLET_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[ui]
theme = "solarized"
`)
	t.Setenv(envCfgPath, path)

	_, err := Load()
	assert.ErrorContains(t, err, "ui.theme")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Setenv(envCfgPath, writeConfig(t, "[window\nwidth = "))

	_, err := Load()
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	valid := Config{
		App:    AppConfig{ID: "x"},
		Window: WindowConfig{Width: 10, Height: 10},
		UI:     UIConfig{Theme: ThemeDark},
		Log:    LogConfig{Level: "info"},
	}
	require.NoError(t, valid.Validate())

	noID := valid
	noID.App.ID = ""
	assert.Error(t, noID.Validate())

	zeroSize := valid
	zeroSize.Window.Height = 0
	assert.Error(t, zeroSize.Validate())

	badLevel := valid
	badLevel.Log.Level = "trace"
	assert.Error(t, badLevel.Validate())
}
