package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"secret-wallet/internal/logger"
)

const (
	envPrefix  = "SECRET_WALLET"
	envCfgPath = "SECRET_WALLET_CONFIG"
)

// Theme variants understood by the view layer.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config holds application configuration.
type Config struct {
	App    AppConfig
	Window WindowConfig
	UI     UIConfig
	Log    LogConfig
	Debug  bool
}

// AppConfig identifies the application to the host toolkit. The ID also scopes
// the preferences store the persisted state lives in.
type AppConfig struct {
	ID    string
	Title string
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type UIConfig struct {
	Theme string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from file and env. Env var overrides use prefix SECRET_WALLET_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv(envCfgPath); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "secret-wallet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.id", "network.secret.wallet")
	v.SetDefault("app.title", "Secret Wallet")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 640)
	v.SetDefault("ui.theme", ThemeDark)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("debug", false)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the application cannot start with.
func (c Config) Validate() error {
	if c.App.ID == "" {
		return errors.New("config: app.id must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %.0fx%.0f must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.UI.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("config: unknown ui.theme %q", c.UI.Theme)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
