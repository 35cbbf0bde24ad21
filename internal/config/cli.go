package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Driver        string
	StorePath     string
	SessionCmd    string
	Focus         int
	Rest          int
	AmbientSound  int
	DryRun        bool
	DisableNotify bool
	NoSound       bool
}

// WithCLIConfig returns an Option that overrides file settings with the
// flags set on the command line.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Driver:        ctx.String("driver"),
			StorePath:     ctx.String("db"),
			SessionCmd:    ctx.String("cmd"),
			Focus:         ctx.Int("focus"),
			Rest:          ctx.Int("rest"),
			AmbientSound:  ctx.Int("sound"),
			DryRun:        ctx.Bool("dry-run"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Driver != "" {
		c.Store.Driver = opts.Driver
	}

	if opts.StorePath != "" {
		c.Store.Path = opts.StorePath
	}

	if opts.DryRun {
		c.Store.Driver = DriverMemory
	}

	if opts.Focus > 0 {
		c.Timer.Focus = opts.Focus
	}

	if opts.Rest > 0 {
		c.Timer.Rest = opts.Rest
	}

	if opts.AmbientSound > 0 {
		c.Settings.AmbientSound = opts.AmbientSound
	}

	if opts.NoSound {
		c.Settings.AmbientSound = 0
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Settings.Notify = false
	}
}
