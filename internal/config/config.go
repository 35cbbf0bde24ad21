// Package config loads focusflow settings from the YAML config file,
// first-run prompts and command-line flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Store    StoreConfig    `mapstructure:"store"`
		Settings SettingsConfig `mapstructure:"settings"`
		Log      LogConfig      `mapstructure:"log"`
		Timer    TimerConfig    `mapstructure:"timer"`
		Display  DisplayConfig  `mapstructure:"display"`
	}

	// StoreConfig selects the record store backend
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
		// Path is the database file. Empty means the default location in
		// the XDG data directory.
		Path string `mapstructure:"path"`
	}

	// TimerConfig holds the default phase lengths
	TimerConfig struct {
		Focus int           `mapstructure:"focus"` // minutes
		Rest  int           `mapstructure:"rest"`  // minutes
		Tick  time.Duration `mapstructure:"tick"`
	}

	// SettingsConfig holds session settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
		// AmbientSound is the id of the ambient sound played during focus
		// phases; 0 turns it off
		AmbientSound int  `mapstructure:"ambient_sound"`
		Notify       bool `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig controls the log file
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"` // megabytes
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// Store drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
