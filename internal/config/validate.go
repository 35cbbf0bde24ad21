package config

import (
	"slices"
	"strings"
)

const (
	minPhaseMinutes = 1
	maxPhaseMinutes = 720 // 12 hours
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverBolt, DriverSQLite, DriverMemory:
	default:
		return errUnknownDriver.Fmt(c.Store.Driver)
	}

	if err := validatePhase("focus", c.Timer.Focus); err != nil {
		return err
	}

	if err := validatePhase("rest", c.Timer.Rest); err != nil {
		return err
	}

	if c.Timer.Tick <= 0 {
		return errInvalidTick.Fmt(c.Timer.Tick)
	}

	if c.Settings.AmbientSound < 0 {
		return errInvalidAmbientSound.Fmt(c.Settings.AmbientSound)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSize < 1 {
		return errInvalidLogSize.Fmt(c.Log.MaxSize)
	}

	return nil
}

func validatePhase(name string, minutes int) error {
	if minutes < minPhaseMinutes || minutes > maxPhaseMinutes {
		return errInvalidDuration.Fmt(
			name,
			minPhaseMinutes,
			maxPhaseMinutes,
			minutes,
		)
	}

	return nil
}
