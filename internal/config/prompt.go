package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
█▀▀ █▀█ █▀▀ █ █ █▀ █▀▀ █   █▀█ █ █ █
█▀  █▄█ █▄▄ █▄█ ▄█ █▀  █▄▄ █▄█ ▀▄▀▄▀`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Focus int
	Rest  int
}

// WithPromptConfig returns an Option that asks for the default phase lengths
// when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure focusflow for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file to change any settings later.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus phase length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.Focus),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Rest phase length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.Rest),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.Focus = opts.Focus
	c.Timer.Rest = opts.Rest
}
