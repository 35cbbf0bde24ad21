package app

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config file (default: $XDG_CONFIG_HOME/focusflow/config.yml)",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Record store backend: bolt or sqlite (overrides store.driver)",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file (overrides store.path)",
	}

	logFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Path to the log file (default: $XDG_DATA_HOME/focusflow/log/focusflow.log)",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Keep every change in memory. Nothing is written to the database",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this date (e.g. '2024-03-01', '7 days ago')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "Title of the focus model",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Category of the focus model",
	}

	goalsFlag = &cli.StringFlag{
		Name:    "goals",
		Aliases: []string{"g"},
		Usage:   "What you want to achieve",
	}

	focusFlag = &cli.IntFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus phase length in minutes (default: timer.focus)",
	}

	restFlag = &cli.IntFlag{
		Name:    "rest",
		Aliases: []string{"r"},
		Usage:   "Rest phase length in minutes (default: timer.rest)",
	}

	totalFlag = &cli.IntFlag{
		Name:    "total",
		Aliases: []string{"n"},
		Usage:   "Number of sessions needed to complete the focus model",
	}

	soundFlag = &cli.IntFlag{
		Name:  "sound",
		Usage: "Id of the ambient sound to play during focus phases (see 'sound list')",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable the ambient sound",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notifications sent on phase changes and completion",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after the session is completed",
	}
)
