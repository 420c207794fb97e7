package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds file-logging settings. The terminal is owned by the
// TUI, so logs always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme       string
	TabMaxWidth int
}

// Load reads configuration from file and env. Env var overrides use prefix SANDPAD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sandpad", "sandpad.db"))
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sandpad", "sandpad.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.tab_max_width", 20)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SANDPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sandpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SANDPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SANDPAD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "sandpad", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.tab_max_width", cfg.UI.TabMaxWidth)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
