// Package config loads fluxlist settings.
//
// Settings are layered, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file (Load)
//  3. FLUXLIST_* environment variables (ApplyEnv)
//  4. Command-line flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/fluxlist/internal/item"
	"github.com/dshills/fluxlist/internal/logging"
)

// Config errors.
var (
	// ErrUnsupportedFormat indicates a config file extension we cannot parse.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a setting failed validation.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config is the complete set of settings.
type Config struct {
	Item       ItemConfig       `toml:"item" yaml:"item"`
	UI         UIConfig         `toml:"ui" yaml:"ui"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Dispatcher DispatcherConfig `toml:"dispatcher" yaml:"dispatcher"`
}

// ItemConfig controls items created by the button.
type ItemConfig struct {
	// DefaultName is the name of every item the button creates.
	DefaultName string `toml:"default_name" yaml:"default_name"`
	// IDStrategy is "counter" or "uuid".
	IDStrategy string `toml:"id_strategy" yaml:"id_strategy"`
}

// UIConfig holds view labels.
type UIConfig struct {
	Title       string `toml:"title" yaml:"title"`
	ButtonLabel string `toml:"button_label" yaml:"button_label"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs while the terminal UI
	// is running and writes to stderr otherwise.
	File string `toml:"file" yaml:"file"`
}

// DispatcherConfig toggles dispatcher diagnostics.
type DispatcherConfig struct {
	Metrics bool `toml:"metrics" yaml:"metrics"`
	Trace   bool `toml:"trace" yaml:"trace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Item: ItemConfig{
			DefaultName: "Marco",
			IDStrategy:  item.StrategyCounter,
		},
		UI: UIConfig{
			Title:       "Items",
			ButtonLabel: "New Item",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (must be debug, info, warn, or error)", ErrInvalid, c.Logging.Level)
	}
	if _, err := item.NewIDGenerator(c.Item.IDStrategy); err != nil {
		return fmt.Errorf("%w: item.id_strategy: %v", ErrInvalid, err)
	}
	if c.Item.DefaultName == "" {
		return fmt.Errorf("%w: item.default_name is empty", ErrInvalid)
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fluxlist", "config.toml"), nil
}

// Resolve builds the effective configuration from an explicit path (which
// must exist) or, when path is empty, from the default path if present.
// Environment overrides are applied and the result validated.
func Resolve(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if p, err := DefaultPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
