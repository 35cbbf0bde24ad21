package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focusflow/internal/osutil"
)

// viper keys
const (
	keyStoreDriver    = "store.driver"
	keyStorePath      = "store.path"
	keyTimerFocus     = "timer.focus"
	keyTimerRest      = "timer.rest"
	keyTimerTick      = "timer.tick"
	keyNotify         = "settings.notify"
	keyAmbientSound   = "settings.ambient_sound"
	keySessionCmd     = "settings.cmd"
	keyDarkTheme      = "display.dark_theme"
	keyLogLevel       = "log.level"
	keyLogMaxSize     = "log.max_size"
	keyLogMaxBackups  = "log.max_backups"
	defaultFocusMins  = 25
	defaultRestMins   = 5
	defaultLogSizeMB  = 10
	defaultLogBackups = 3
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing one with the defaults if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values set by earlier
// options, such as the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStoreDriver, DriverBolt)
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyTimerFocus, defaultFocusMins)
	v.SetDefault(keyTimerRest, defaultRestMins)
	v.SetDefault(keyTimerTick, "1s")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyAmbientSound, 0)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, defaultLogSizeMB)
	v.SetDefault(keyLogMaxBackups, defaultLogBackups)

	if c.Timer.Focus > 0 {
		v.SetDefault(keyTimerFocus, c.Timer.Focus)
	}

	if c.Timer.Rest > 0 {
		v.SetDefault(keyTimerRest, c.Timer.Rest)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
